package usecase

import (
	"log"
	"math"

	"github.com/nutritrack/backend/internal/domain"
)

// statusColors are the display colors consumers use for each bucket.
var statusColors = map[domain.NutrientStatus]string{
	domain.StatusOptimal:  "#4CAF50",
	domain.StatusGood:     "#8BC34A",
	domain.StatusModerate: "#FFC107",
	domain.StatusLow:      "#FF9800",
	domain.StatusVeryLow:  "#F44336",
}

// implausiblePercent marks percentages that almost certainly come from a
// unit error upstream. They are surfaced as a warning, never hidden.
const implausiblePercent = 10000

// ClassifyIntake maps a normalized intake value and its personalized RDA
// target to a rounded percentage and a qualitative status bucket. Percent
// is not clamped upward: values over 100% show over-consumption.
func ClassifyIntake(intakeValue, rdaValue float64) domain.NutrientClassification {
	percent := 0
	if rdaValue > 0 {
		percent = int(math.Round(intakeValue / rdaValue * 100))
	}

	if percent > implausiblePercent {
		log.Printf("[RDA] extremely high percentage %d%% (intake %g, target %g), possible unit error",
			percent, intakeValue, rdaValue)
	}

	status := statusForPercent(percent)
	return domain.NutrientClassification{
		Percent: percent,
		Status:  status,
		Color:   statusColors[status],
	}
}

// statusForPercent applies the inclusive lower-bound thresholds.
func statusForPercent(percent int) domain.NutrientStatus {
	switch {
	case percent >= 100:
		return domain.StatusOptimal
	case percent >= 70:
		return domain.StatusGood
	case percent >= 50:
		return domain.StatusModerate
	case percent >= 30:
		return domain.StatusLow
	default:
		return domain.StatusVeryLow
	}
}
