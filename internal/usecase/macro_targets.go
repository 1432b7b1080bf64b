package usecase

import (
	"math"

	"github.com/nutritrack/backend/internal/domain"
)

// activityFactors multiply basal metabolic rate into total daily energy
// expenditure.
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extreme":   1.9,
}

const (
	defaultActivityFactor = 1.375
	defaultCalorieBudget  = 2000
)

// covidMacroNotes is the per-macro guidance attached to targets for
// long-COVID profiles.
var covidMacroNotes = map[string]string{
	"protein": "Increased to support immune function and tissue repair",
	"carbs":   "Focus on complex carbs with anti-inflammatory properties",
	"fat":     "Higher proportion of omega-3s recommended to reduce inflammation",
}

// ComputeMacroTargets derives a personalized calorie budget and macro gram
// targets from the profile: Mifflin-St Jeor BMR scaled by activity level,
// with long-COVID and BMI adjustments, split into protein/carb/fat energy
// shares. Profiles missing age, weight, or height get a 2000 kcal budget.
func ComputeMacroTargets(profile domain.UserProfile) domain.MacroTargets {
	complete := ResolveProfileDefaults(profile)

	calories := totalEnergyExpenditure(complete)
	proteinPct, carbsPct, fatPct := macroDistribution(complete)

	targets := domain.MacroTargets{
		Calories: calories,
		Protein:  round1(calories * proteinPct / 4),
		Carbs:    round1(calories * carbsPct / 4),
		Fat:      round1(calories * fatPct / 9),
	}

	if complete.HasLongCovid {
		targets.Notes = covidMacroNotes
	}

	return targets
}

// totalEnergyExpenditure estimates daily calorie needs via Mifflin-St Jeor.
func totalEnergyExpenditure(complete domain.CompleteProfile) float64 {
	if !complete.AgeKnown || !complete.BodyKnown {
		return defaultCalorieBudget
	}

	var bmr float64
	if complete.Gender == "female" {
		bmr = 10*complete.Weight + 6.25*complete.Height - 5*float64(complete.Age) - 161
	} else {
		bmr = 10*complete.Weight + 6.25*complete.Height - 5*float64(complete.Age) + 5
	}

	multiplier, ok := activityFactors[complete.ActivityLevel]
	if !ok {
		multiplier = defaultActivityFactor
	}
	tdee := bmr * multiplier

	if complete.HasLongCovid {
		tdee *= 1.07
	}

	if bmi := bodyMassIndex(complete); bmi > 0 {
		if bmi < 18.5 {
			tdee *= 1.1
		} else if bmi > 30 {
			tdee *= 0.9
		}
	}

	return math.Round(tdee)
}

// macroDistribution returns the protein/carb/fat energy shares for the
// profile. Shares always sum to 1.
func macroDistribution(complete domain.CompleteProfile) (protein, carbs, fat float64) {
	protein, carbs, fat = 0.25, 0.45, 0.30

	if complete.HasLongCovid {
		protein, carbs, fat = 0.30, 0.40, 0.30
	}

	bmi := bodyMassIndex(complete)
	if bmi > 0 && bmi < 18.5 {
		protein, carbs, fat = 0.20, 0.45, 0.35
	}
	if bmi > 30 {
		protein, carbs, fat = 0.35, 0.35, 0.30
	}

	if complete.AgeKnown && complete.Age > 65 {
		// Shift energy toward protein, splitting the remainder between
		// carbs and fat in their existing proportion.
		boosted := math.Min(protein+0.05, 0.40)
		remaining := 1.0 - boosted
		carbShare := carbs / (carbs + fat)
		protein = boosted
		carbs = remaining * carbShare
		fat = remaining * (1 - carbShare)
	}

	return protein, carbs, fat
}

// bodyMassIndex returns 0 when weight or height is unknown.
func bodyMassIndex(complete domain.CompleteProfile) float64 {
	if !complete.BodyKnown {
		return 0
	}
	heightMeters := complete.Height / 100
	return complete.Weight / (heightMeters * heightMeters)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
