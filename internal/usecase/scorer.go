package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nutritrack/backend/internal/domain"
)

// Macro contribution weights for the efficiency estimate.
const (
	proteinWeight = 0.2
	carbWeight    = 0.1
	fatWeight     = 0.15
)

// mealTypeFactors weight the efficiency estimate by meal slot. Unknown
// meal types get a neutral 1.0.
var mealTypeFactors = map[string]float64{
	"Breakfast":        1.3,
	"Morning Snack":    0.9,
	"Lunch":            1.1,
	"Afternoon Snack":  0.8,
	"Dinner":           0.9,
	"Late Night Snack": 0.6,
	"Snack":            0.8,
}

// covidEfficiencyFactors reduce the estimate for long-COVID profiles,
// scaled by condition severity.
var covidEfficiencyFactors = map[string]float64{
	"mild":        0.95,
	"moderate":    0.85,
	"severe":      0.75,
	"very severe": 0.65,
}

const defaultCovidEfficiencyFactor = 0.85

var hourPattern = regexp.MustCompile(`(\d+):`)

// ScoreMeal computes the bounded [0,100] metabolic efficiency estimate for
// one logged meal. Pure and deterministic: no I/O, same inputs always
// produce the same score. The caller stores the result on the entry at
// log/edit time; it is never recomputed retroactively.
func ScoreMeal(meal domain.JournalEntry, profile domain.UserProfile) float64 {
	hour24 := parseHour24(meal.Time)

	macroContribution := float64(meal.Protein)*proteinWeight +
		float64(meal.Carbs)*carbWeight +
		float64(meal.Fat)*fatWeight

	macroBalance := macroContribution * 10
	if macroBalance > 100 {
		macroBalance = 100
	}

	efficiency := macroBalance * timeOfDayFactor(hour24) * mealTypeFactor(meal.MealType)

	complete := ResolveProfileDefaults(profile)
	if meal.LongCovidAdjust && complete.HasLongCovid {
		factor, ok := covidEfficiencyFactors[complete.CovidSeverity]
		if !ok {
			factor = defaultCovidEfficiencyFactor
		}
		efficiency *= factor

		// Only the lists recorded on the entry count here; they are
		// populated at log/edit time, never derived inside the scorer.
		if len(meal.LongCovidBenefits) > 0 {
			efficiency *= 1.1
		}
		if len(meal.LongCovidCautions) > 0 {
			efficiency *= 0.9
		}
	}

	if efficiency > 100 {
		return 100
	}
	if efficiency < 0 {
		return 0
	}
	return efficiency
}

// timeOfDayFactor penalizes very early/late meals and rewards morning ones.
func timeOfDayFactor(hour24 int) float64 {
	switch {
	case hour24 < 6 || hour24 > 20:
		return 0.7
	case hour24 >= 7 && hour24 <= 10:
		return 1.2
	case hour24 >= 17 && hour24 <= 19:
		return 0.9
	default:
		return 1.0
	}
}

func mealTypeFactor(mealType string) float64 {
	if factor, ok := mealTypeFactors[mealType]; ok {
		return factor
	}
	return 1.0
}

// parseHour24 extracts the 24-hour hour from a 12-hour "h:mm AM/PM" string.
// Malformed times default to noon.
func parseHour24(timeString string) int {
	match := hourPattern.FindStringSubmatch(timeString)
	if match == nil {
		return 12
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 12
	}

	isPM := strings.Contains(strings.ToLower(timeString), "pm")
	if isPM && hour != 12 {
		hour += 12
	}
	if !isPM && hour == 12 {
		hour = 0
	}
	return hour
}
