package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nutritrack/backend/internal/domain"
)

func TestBuildReport(t *testing.T) {
	ctx := context.Background()

	t.Run("empty journal produces an empty report", func(t *testing.T) {
		svc := NewAnalysisService(NewMockJournalRepository(), NewMockProfileRepository())

		report, err := svc.BuildReport(ctx, localDate(2025, 3, 1), localDate(2025, 3, 31), BucketDay)
		if err != nil {
			t.Fatalf("BuildReport() error = %v, want nil", err)
		}
		if len(report.Buckets) != 0 {
			t.Errorf("len(Buckets) = %d, want 0", len(report.Buckets))
		}
		if len(report.RDA) != 16 {
			t.Errorf("len(RDA) = %d, want 16", len(report.RDA))
		}
		if len(report.Nutrients) != 16 {
			t.Errorf("len(Nutrients) = %d, want 16", len(report.Nutrients))
		}
		if report.Nutrients["vitamin_c"].Status != domain.StatusVeryLow {
			t.Errorf("vitamin_c status = %s, want %s", report.Nutrients["vitamin_c"].Status, domain.StatusVeryLow)
		}
	})

	t.Run("wraps store failures", func(t *testing.T) {
		journal := NewMockJournalRepository()
		journal.listError = errors.New("connection refused")
		svc := NewAnalysisService(journal, NewMockProfileRepository())

		_, err := svc.BuildReport(ctx, localDate(2025, 3, 1), localDate(2025, 3, 31), BucketDay)
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Errorf("error = %v, want ErrStoreUnavailable", err)
		}
	})

	t.Run("classifies window intake against the personalized table", func(t *testing.T) {
		journal := NewMockJournalRepository()
		journal.entries["a"] = domain.JournalEntry{
			ID: "a", Date: "2025-03-10",
			Micronutrients: domain.NutrientMap{
				"vitamin_c": domain.AmountFromReading(45, "mg"),
			},
		}
		svc := NewAnalysisService(journal, NewMockProfileRepository())

		report, err := svc.BuildReport(ctx, localDate(2025, 3, 10), localDate(2025, 3, 10), BucketDay)
		if err != nil {
			t.Fatalf("BuildReport() error = %v, want nil", err)
		}

		got := report.Nutrients["vitamin_c"]
		if got.Intake != 45 {
			t.Errorf("Intake = %v, want 45", got.Intake)
		}
		if got.Target != 90 {
			t.Errorf("Target = %v, want 90", got.Target)
		}
		if got.Percent != 50 {
			t.Errorf("Percent = %d, want 50", got.Percent)
		}
		if got.Status != domain.StatusModerate {
			t.Errorf("Status = %s, want %s", got.Status, domain.StatusModerate)
		}
	})

	t.Run("uses the stored profile for targets", func(t *testing.T) {
		profiles := NewMockProfileRepository()
		profiles.profile = &domain.UserProfile{Gender: "female", Age: 30}
		svc := NewAnalysisService(NewMockJournalRepository(), profiles)

		report, err := svc.BuildReport(ctx, localDate(2025, 3, 1), localDate(2025, 3, 31), BucketDay)
		if err != nil {
			t.Fatalf("BuildReport() error = %v, want nil", err)
		}
		if got := report.Nutrients["iron"].Target; got != 18 {
			t.Errorf("iron target = %v, want 18", got)
		}
		if !report.Nutrients["iron"].IsAdjusted {
			t.Error("iron IsAdjusted = false, want true")
		}
	})

	t.Run("merges micronutrient totals across buckets", func(t *testing.T) {
		journal := NewMockJournalRepository()
		journal.entries["a"] = domain.JournalEntry{
			ID: "a", Date: "2025-03-10",
			Micronutrients: domain.NutrientMap{"zinc": domain.AmountFromReading(4, "mg")},
		}
		journal.entries["b"] = domain.JournalEntry{
			ID: "b", Date: "2025-03-12",
			Micronutrients: domain.NutrientMap{"zinc": domain.AmountFromReading(7, "mg")},
		}
		svc := NewAnalysisService(journal, NewMockProfileRepository())

		report, err := svc.BuildReport(ctx, localDate(2025, 3, 10), localDate(2025, 3, 12), BucketDay)
		if err != nil {
			t.Fatalf("BuildReport() error = %v, want nil", err)
		}
		if got := report.Nutrients["zinc"].Intake; got != 11 {
			t.Errorf("zinc intake = %v, want 11", got)
		}
		if got := report.Nutrients["zinc"].Percent; got != 100 {
			t.Errorf("zinc percent = %d, want 100", got)
		}
	})
}

func TestSummarizeEfficiency(t *testing.T) {
	window := func() (time.Time, time.Time) {
		return localDate(2025, 3, 10), localDate(2025, 3, 10)
	}

	t.Run("weights same-slot entries by calories", func(t *testing.T) {
		entries := []domain.JournalEntry{
			{ID: "a", Date: "2025-03-10", MealType: "Lunch", Calories: 500, MetabolicEfficiency: 80},
			{ID: "b", Date: "2025-03-10", MealType: "Lunch", Calories: 500, MetabolicEfficiency: 60},
		}
		start, end := window()
		summaries := summarizeEfficiency(entries, start, end)
		if len(summaries) != 1 {
			t.Fatalf("len(summaries) = %d, want 1", len(summaries))
		}

		got := summaries[0]
		if got.Items != 2 {
			t.Errorf("Items = %d, want 2", got.Items)
		}
		if got.Efficiency != 70 {
			t.Errorf("Efficiency = %d, want 70", got.Efficiency)
		}
		if got.Calories != 1000 {
			t.Errorf("Calories = %v, want 1000", got.Calories)
		}
		if got.ActualEnergy != 700 {
			t.Errorf("ActualEnergy = %v, want 700", got.ActualEnergy)
		}
		if got.WastedEnergy != 300 {
			t.Errorf("WastedEnergy = %v, want 300", got.WastedEnergy)
		}
	})

	t.Run("excludes workout meal types", func(t *testing.T) {
		entries := []domain.JournalEntry{
			{ID: "a", Date: "2025-03-10", MealType: "Pre-workout", Calories: 200, MetabolicEfficiency: 90},
			{ID: "b", Date: "2025-03-10", MealType: "Post-workout", Calories: 300, MetabolicEfficiency: 90},
			{ID: "c", Date: "2025-03-10", MealType: "Dinner", Calories: 600, MetabolicEfficiency: 75},
		}
		start, end := window()
		summaries := summarizeEfficiency(entries, start, end)
		if len(summaries) != 1 {
			t.Fatalf("len(summaries) = %d, want 1", len(summaries))
		}
		if summaries[0].MealType != "Dinner" {
			t.Errorf("MealType = %s, want Dinner", summaries[0].MealType)
		}
	})

	t.Run("zero-calorie slots report zero efficiency", func(t *testing.T) {
		entries := []domain.JournalEntry{
			{ID: "a", Date: "2025-03-10", MealType: "Snack", Calories: 0, MetabolicEfficiency: 50},
		}
		start, end := window()
		summaries := summarizeEfficiency(entries, start, end)
		if len(summaries) != 1 {
			t.Fatalf("len(summaries) = %d, want 1", len(summaries))
		}
		if summaries[0].Efficiency != 0 {
			t.Errorf("Efficiency = %d, want 0", summaries[0].Efficiency)
		}
	})

	t.Run("sorts by date then by meal slot order", func(t *testing.T) {
		entries := []domain.JournalEntry{
			{ID: "a", Date: "2025-03-11", MealType: "Breakfast", Calories: 400, MetabolicEfficiency: 90},
			{ID: "b", Date: "2025-03-10", MealType: "Dinner", Calories: 600, MetabolicEfficiency: 70},
			{ID: "c", Date: "2025-03-10", MealType: "Breakfast", Calories: 350, MetabolicEfficiency: 95},
		}
		summaries := summarizeEfficiency(entries, localDate(2025, 3, 10), localDate(2025, 3, 11))
		if len(summaries) != 3 {
			t.Fatalf("len(summaries) = %d, want 3", len(summaries))
		}

		wantOrder := []string{"Breakfast", "Dinner", "Breakfast"}
		wantDates := []string{"2025-03-10", "2025-03-10", "2025-03-11"}
		for i := range summaries {
			if summaries[i].Date != wantDates[i] || summaries[i].MealType != wantOrder[i] {
				t.Errorf("summaries[%d] = %s %s, want %s %s",
					i, summaries[i].Date, summaries[i].MealType, wantDates[i], wantOrder[i])
			}
		}
	})

	t.Run("entries outside the window are ignored", func(t *testing.T) {
		entries := []domain.JournalEntry{
			{ID: "a", Date: "2025-03-09", MealType: "Lunch", Calories: 500, MetabolicEfficiency: 80},
		}
		start, end := window()
		if summaries := summarizeEfficiency(entries, start, end); len(summaries) != 0 {
			t.Errorf("len(summaries) = %d, want 0", len(summaries))
		}
	})
}
