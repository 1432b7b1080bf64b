package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/nutritrack/backend/internal/domain"
)

// Nutrient groups boosted under a long-COVID condition, tiered by how
// directly each group supports recovery. Each tier has its own multiplier
// base and cap.
var (
	immuneSupportGroup = map[string]bool{
		"vitamin_c": true, "vitamin_d": true, "zinc": true, "selenium": true,
	}
	repairMetabolicGroup = map[string]bool{
		"vitamin_a": true, "vitamin_e": true, "vitamin_b6": true,
		"vitamin_b12": true, "folate": true, "iron": true,
	}
	cofactorGroup = map[string]bool{
		"magnesium": true, "copper": true, "vitamin_b1": true,
		"vitamin_b2": true, "vitamin_b3": true,
	}
)

// Tier multiplier bases and caps for condition-severity adjustment.
const (
	immuneBoostBase = 1.5
	immuneBoostCap  = 2.5
	repairBoostBase = 1.3
	repairBoostCap  = 2.0
	cofactorBase    = 1.1
	cofactorCap     = 1.5
)

// severityFactor maps a condition severity to its adjustment factor.
func severityFactor(severity string) float64 {
	switch severity {
	case "mild":
		return 1.1
	case "moderate":
		return 1.3
	case "severe":
		return 1.5
	case "very severe":
		return 1.8
	default:
		return 1.0
	}
}

// ResolveProfileDefaults normalizes a raw profile into a fully populated
// CompleteProfile in one explicit step, so personalization logic never
// repeats fallback chains at each use site.
func ResolveProfileDefaults(profile domain.UserProfile) domain.CompleteProfile {
	gender := strings.ToLower(strings.TrimSpace(profile.Gender))
	if gender != "female" {
		gender = "male"
	}

	severity := strings.ToLower(strings.TrimSpace(profile.CovidSeverity))
	if severity == "none" {
		severity = ""
	}

	activity := strings.ToLower(strings.TrimSpace(profile.ActivityLevel))
	if activity == "" {
		activity = "light"
	}

	return domain.CompleteProfile{
		Age:               profile.Age,
		Gender:            gender,
		Weight:            profile.Weight,
		Height:            profile.Height,
		ActivityLevel:     activity,
		CovidSeverity:     severity,
		HasLongCovid:      profile.HasLongCovid || severity != "",
		MedicalConditions: profile.MedicalConditions,
		AgeKnown:          profile.Age > 0,
		BodyKnown:         profile.Weight > 0 && profile.Height > 0,
	}
}

// PersonalizeRDA produces an adjusted RDA table for the given profile.
// Per nutrient, in order: female adjustment, age bracket, condition
// severity by nutrient group, validity fallback, rounding to one decimal.
// Same inputs always yield the same table.
func PersonalizeRDA(base domain.RDATable, profile domain.UserProfile) domain.RDATable {
	complete := ResolveProfileDefaults(profile)
	personalized := make(domain.RDATable, len(base))

	for key, entry := range base {
		adjusted := entry.Value

		if complete.Gender == "female" {
			femaleAdjust := entry.FemaleAdjust
			if femaleAdjust == 0 {
				femaleAdjust = 1.0
			}
			adjusted *= femaleAdjust
		}

		if complete.AgeKnown {
			adjusted *= ageMultiplier(complete.Age, key)
		}

		if complete.CovidSeverity != "" {
			adjusted *= conditionMultiplier(complete.CovidSeverity, key)
		}

		if math.IsNaN(adjusted) || math.IsInf(adjusted, 0) || adjusted <= 0 {
			log.Printf("[RDA] invalid personalized value %g for %s, falling back to base %g",
				adjusted, key, entry.Value)
			adjusted = entry.Value
		}

		rounded := math.Round(adjusted*10) / 10

		entry.Value = rounded
		entry.IsAdjusted = rounded != base[key].Value
		personalized[key] = entry
	}

	return personalized
}

// ageMultiplier returns the age-bracket adjustment for one nutrient.
// Brackets are mutually exclusive; at most one applies.
func ageMultiplier(age int, nutrientKey string) float64 {
	switch {
	case age >= 70:
		switch nutrientKey {
		case "vitamin_d":
			return 1.2
		case "vitamin_b12":
			return 1.1
		case "calcium":
			return 1.15
		}
	case age >= 50:
		switch nutrientKey {
		case "vitamin_d":
			return 1.1
		case "vitamin_b12":
			return 1.05
		}
	case age <= 18:
		switch nutrientKey {
		case "calcium":
			return 1.15
		case "iron":
			return 1.1
		}
	}
	return 1.0
}

// conditionMultiplier returns the severity-tiered multiplier for one
// nutrient. Nutrients outside all three groups are unaffected.
func conditionMultiplier(severity, nutrientKey string) float64 {
	factor := severityFactor(severity)
	switch {
	case immuneSupportGroup[nutrientKey]:
		return math.Min(factor*immuneBoostBase, immuneBoostCap)
	case repairMetabolicGroup[nutrientKey]:
		return math.Min(factor*repairBoostBase, repairBoostCap)
	case cofactorGroup[nutrientKey]:
		return math.Min(factor*cofactorBase, cofactorCap)
	default:
		return 1.0
	}
}
