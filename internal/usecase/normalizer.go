package usecase

import (
	"log"
	"strconv"
	"strings"

	"github.com/nutritrack/backend/internal/domain"
)

// NormalizeNutrient converts a raw nutrient amount into a reading matching
// the reference unit. The function is pure and never fails: malformed input
// degrades to a zero reading, and a unit mismatch without a known
// conversion passes the value through unconverted (logged as a data-quality
// warning, since guessing a unit silently would be worse).
func NormalizeNutrient(amount domain.NutrientAmount, referenceUnit, nutrientKey string) domain.NutrientReading {
	switch amount.Kind {
	case domain.AmountNumber:
		// Bare numbers are assumed to already be in the reference unit.
		return domain.NutrientReading{Value: amount.Number, Unit: referenceUnit}

	case domain.AmountText:
		value, err := strconv.ParseFloat(strings.TrimSpace(amount.Text), 64)
		if err != nil {
			value = 0
		}
		return domain.NutrientReading{Value: value, Unit: referenceUnit}

	case domain.AmountReading:
		return convertReading(amount.Reading, referenceUnit, nutrientKey)

	default: // AmountAbsent
		return domain.NutrientReading{Value: 0, Unit: referenceUnit}
	}
}

// convertReading applies the known unit conversions. Units are normalized
// for spelling first so "μg" and "mcg" are treated as the same unit.
func convertReading(reading domain.NutrientReading, referenceUnit, nutrientKey string) domain.NutrientReading {
	unit := normalizeUnitName(reading.Unit)
	ref := normalizeUnitName(referenceUnit)

	if unit == ref {
		return domain.NutrientReading{Value: reading.Value, Unit: referenceUnit}
	}

	switch {
	case unit == "mcg" && ref == "mg":
		return domain.NutrientReading{Value: reading.Value / 1000, Unit: referenceUnit}
	case unit == "mg" && ref == "mcg":
		return domain.NutrientReading{Value: reading.Value * 1000, Unit: referenceUnit}
	case unit == "g" && ref == "mg":
		return domain.NutrientReading{Value: reading.Value * 1000, Unit: referenceUnit}
	case unit == "iu" && ref == "mcg" && nutrientKey == "vitamin_a":
		// 1 IU ≈ 0.3 mcg RAE for vitamin A
		return domain.NutrientReading{Value: reading.Value * 0.3, Unit: referenceUnit}
	case unit == "iu" && ref == "mcg" && nutrientKey == "vitamin_d":
		// 1 IU = 0.025 mcg for vitamin D
		return domain.NutrientReading{Value: reading.Value * 0.025, Unit: referenceUnit}
	}

	log.Printf("[NUTRIENT] no conversion from %q to %q for %s, passing value %g through",
		reading.Unit, referenceUnit, nutrientKey, reading.Value)
	return domain.NutrientReading{Value: reading.Value, Unit: reading.Unit}
}

// normalizeUnitName maps unit spelling variants onto the canonical names.
func normalizeUnitName(unit string) string {
	switch strings.TrimSpace(strings.ToLower(unit)) {
	case "mcg", "μg", "ug":
		return "mcg"
	case "mg":
		return "mg"
	case "g", "gram", "grams":
		return "g"
	case "iu":
		return "iu"
	default:
		return strings.TrimSpace(strings.ToLower(unit))
	}
}
