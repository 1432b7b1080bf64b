package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nutritrack/backend/internal/domain"
)

// mealTypeOrder fixes the chronological slot order used when summarizing
// efficiency within a day.
var mealTypeOrder = []string{
	"Breakfast", "Morning Snack", "Lunch",
	"Afternoon Snack", "Dinner", "Late Night Snack",
}

// workout meal types are excluded from the efficiency summary; they follow
// different energy dynamics than regular meals.
var excludedMealTypes = map[string]bool{
	"Pre-workout":  true,
	"Post-workout": true,
}

// NutrientSummary compares window intake for one nutrient against its
// personalized target.
type NutrientSummary struct {
	Intake     float64               `json:"intake"`
	Target     float64               `json:"target"`
	Unit       string                `json:"unit"`
	Percent    int                   `json:"percent"`
	Status     domain.NutrientStatus `json:"status"`
	Color      string                `json:"color"`
	IsAdjusted bool                  `json:"isAdjusted"`
}

// MealEfficiency is the calorie-weighted efficiency of all entries sharing
// one date and meal slot, with the actual/wasted energy split.
type MealEfficiency struct {
	Date         string  `json:"date"`
	MealType     string  `json:"mealType"`
	Items        int     `json:"items"`
	Efficiency   int     `json:"efficiency"`
	Calories     float64 `json:"calories"`
	ActualEnergy float64 `json:"actualEnergy"`
	WastedEnergy float64 `json:"wastedEnergy"`
}

// AnalysisReport is everything the rendering layer needs for one window:
// bucketed totals for charts, the personalized RDA table for axes and
// thresholds, per-nutrient status, macro targets, and efficiency summaries.
type AnalysisReport struct {
	Buckets      map[string]domain.BucketTotals `json:"buckets"`
	RDA          domain.RDATable                `json:"rda"`
	Nutrients    map[string]NutrientSummary     `json:"nutrients"`
	MacroTargets domain.MacroTargets            `json:"macroTargets"`
	Efficiency   []MealEfficiency               `json:"efficiency"`
}

// AnalysisService assembles analysis reports from the journal and profile.
type AnalysisService struct {
	journal  domain.JournalRepository
	profiles domain.ProfileRepository
}

// NewAnalysisService creates an analysis service with its dependencies.
func NewAnalysisService(journal domain.JournalRepository, profiles domain.ProfileRepository) *AnalysisService {
	return &AnalysisService{
		journal:  journal,
		profiles: profiles,
	}
}

// BuildReport aggregates the journal over [windowStart, windowEnd] and
// classifies window intake against the personalized RDA table. An empty
// journal produces an empty report, not an error.
func (s *AnalysisService) BuildReport(ctx context.Context, windowStart, windowEnd time.Time, bucketing Bucketing) (*AnalysisReport, error) {
	entries, err := s.journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	profile := profileOrDefault(ctx, s.profiles)

	buckets := AggregateJournal(entries, windowStart, windowEnd, bucketing)
	personalized := PersonalizeRDA(domain.BaseRDATable(), profile)

	totals := mergeBucketMicros(buckets)
	nutrients := make(map[string]NutrientSummary, len(personalized))
	for key, target := range personalized {
		intake := totals[key].Value
		classification := ClassifyIntake(intake, target.Value)
		nutrients[key] = NutrientSummary{
			Intake:     intake,
			Target:     target.Value,
			Unit:       target.Unit,
			Percent:    classification.Percent,
			Status:     classification.Status,
			Color:      classification.Color,
			IsAdjusted: target.IsAdjusted,
		}
	}

	return &AnalysisReport{
		Buckets:      buckets,
		RDA:          personalized,
		Nutrients:    nutrients,
		MacroTargets: ComputeMacroTargets(profile),
		Efficiency:   summarizeEfficiency(entries, windowStart, windowEnd),
	}, nil
}

// mergeBucketMicros folds all bucket micronutrient totals into one
// window-wide map. Bucket values are already normalized and clamped.
func mergeBucketMicros(buckets map[string]domain.BucketTotals) map[string]domain.NutrientReading {
	totals := make(map[string]domain.NutrientReading)
	for _, bucket := range buckets {
		for key, reading := range bucket.Micros {
			total := totals[key]
			total.Value += reading.Value
			total.Unit = reading.Unit
			totals[key] = total
		}
	}
	return totals
}

// summarizeEfficiency combines same-day, same-slot entries into a
// calorie-weighted efficiency and an actual/wasted energy split, using the
// scores stored on the entries at log time.
func summarizeEfficiency(entries []domain.JournalEntry, windowStart, windowEnd time.Time) []MealEfficiency {
	startDay := truncateToDay(windowStart)
	endDay := truncateToDay(windowEnd)

	type slotKey struct {
		date     string
		mealType string
	}
	slots := make(map[slotKey][]domain.JournalEntry)

	for _, entry := range entries {
		if excludedMealTypes[entry.MealType] {
			continue
		}
		day, ok := parseLocalDate(entry.Date)
		if !ok || day.Before(startDay) || day.After(endDay) {
			continue
		}
		key := slotKey{date: entry.Date, mealType: entry.MealType}
		slots[key] = append(slots[key], entry)
	}

	summaries := make([]MealEfficiency, 0, len(slots))
	for key, group := range slots {
		var totalCalories, actualEnergy float64
		for _, entry := range group {
			calories := float64(entry.Calories)
			totalCalories += calories
			actualEnergy += calories * entry.MetabolicEfficiency / 100
		}

		weighted := 0.0
		if totalCalories > 0 {
			weighted = actualEnergy / totalCalories * 100
		}

		summaries = append(summaries, MealEfficiency{
			Date:         key.date,
			MealType:     key.mealType,
			Items:        len(group),
			Efficiency:   int(math.Round(weighted)),
			Calories:     totalCalories,
			ActualEnergy: math.Round(actualEnergy),
			WastedEnergy: math.Round(totalCalories - actualEnergy),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date < summaries[j].Date
		}
		return mealSlotOrder(summaries[i].MealType) < mealSlotOrder(summaries[j].MealType)
	})

	return summaries
}

// mealSlotOrder places unknown meal types after the known slots.
func mealSlotOrder(mealType string) int {
	for i, known := range mealTypeOrder {
		if known == mealType {
			return i
		}
	}
	return len(mealTypeOrder)
}
