package usecase

import (
	"math"
	"testing"

	"github.com/nutritrack/backend/internal/domain"
)

func TestComputeMacroTargets(t *testing.T) {
	t.Run("incomplete profile gets the default calorie budget", func(t *testing.T) {
		targets := ComputeMacroTargets(domain.UserProfile{})
		if targets.Calories != 2000 {
			t.Errorf("Calories = %v, want 2000", targets.Calories)
		}
		// Default 25/45/30 energy split
		if targets.Protein != 125 {
			t.Errorf("Protein = %v, want 125", targets.Protein)
		}
		if targets.Carbs != 225 {
			t.Errorf("Carbs = %v, want 225", targets.Carbs)
		}
		if math.Abs(targets.Fat-66.7) > 1e-9 {
			t.Errorf("Fat = %v, want 66.7", targets.Fat)
		}
		if targets.Notes != nil {
			t.Errorf("Notes = %v, want nil without a condition", targets.Notes)
		}
	})

	t.Run("computes expenditure from a complete profile", func(t *testing.T) {
		profile := domain.UserProfile{
			Age: 30, Gender: "male", Weight: 80, Height: 180,
			ActivityLevel: "moderate",
		}
		targets := ComputeMacroTargets(profile)
		// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; * 1.55 = 2759
		if targets.Calories != 2759 {
			t.Errorf("Calories = %v, want 2759", targets.Calories)
		}
	})

	t.Run("female formula uses the lower constant", func(t *testing.T) {
		male := ComputeMacroTargets(domain.UserProfile{
			Age: 30, Gender: "male", Weight: 60, Height: 165, ActivityLevel: "sedentary",
		})
		female := ComputeMacroTargets(domain.UserProfile{
			Age: 30, Gender: "female", Weight: 60, Height: 165, ActivityLevel: "sedentary",
		})
		if female.Calories >= male.Calories {
			t.Errorf("female Calories = %v, want below male %v", female.Calories, male.Calories)
		}
	})

	t.Run("condition raises the budget and shifts energy to protein", func(t *testing.T) {
		base := domain.UserProfile{
			Age: 40, Gender: "male", Weight: 75, Height: 178, ActivityLevel: "light",
		}
		withCondition := base
		withCondition.CovidSeverity = "moderate"

		plain := ComputeMacroTargets(base)
		adjusted := ComputeMacroTargets(withCondition)

		if adjusted.Calories <= plain.Calories {
			t.Errorf("Calories = %v, want above %v", adjusted.Calories, plain.Calories)
		}
		if adjusted.Notes == nil {
			t.Error("Notes = nil, want per-macro guidance")
		}
		// 30% protein share vs 25%
		if adjusted.Protein/adjusted.Calories <= plain.Protein/plain.Calories {
			t.Error("protein share should increase with the condition")
		}
	})

	t.Run("unknown activity level falls back to the default factor", func(t *testing.T) {
		known := ComputeMacroTargets(domain.UserProfile{
			Age: 30, Gender: "male", Weight: 80, Height: 180, ActivityLevel: "light",
		})
		unknown := ComputeMacroTargets(domain.UserProfile{
			Age: 30, Gender: "male", Weight: 80, Height: 180, ActivityLevel: "ultra",
		})
		if known.Calories != unknown.Calories {
			t.Errorf("unknown activity Calories = %v, want %v (light default)", unknown.Calories, known.Calories)
		}
	})
}

func TestMacroDistribution(t *testing.T) {
	t.Run("shares always sum to one", func(t *testing.T) {
		profiles := []domain.UserProfile{
			{},
			{CovidSeverity: "severe"},
			{Age: 70, Weight: 50, Height: 170},  // underweight and elderly
			{Age: 70, Weight: 100, Height: 170}, // obese and elderly
			{Age: 30, Weight: 100, Height: 170},
		}
		for _, profile := range profiles {
			complete := ResolveProfileDefaults(profile)
			protein, carbs, fat := macroDistribution(complete)
			sum := protein + carbs + fat
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("shares for %+v sum to %v, want 1", profile, sum)
			}
		}
	})

	t.Run("elderly protein boost is capped", func(t *testing.T) {
		complete := ResolveProfileDefaults(domain.UserProfile{Age: 70, Weight: 100, Height: 170})
		protein, _, _ := macroDistribution(complete)
		if protein > 0.40 {
			t.Errorf("protein share = %v, want at most 0.40", protein)
		}
	})
}
