package domain

// RDAEntry is one nutrient's reference daily intake. Value and Unit define
// the unadjusted target; FemaleAdjust is the multiplicative factor applied
// for female profiles; IsAdjusted is set when personalization changed the
// value from the base table.
type RDAEntry struct {
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	FemaleAdjust float64 `json:"femaleAdjust,omitempty"`
	Description  string  `json:"description,omitempty"`
	IsAdjusted   bool    `json:"isAdjusted,omitempty"`
}

// RDATable maps nutrient keys to their RDA entries.
type RDATable map[string]RDAEntry

// baseRDAData is the process-wide reference intake dataset. It is never
// handed out directly; BaseRDATable returns a copy so callers cannot
// mutate the constant.
var baseRDAData = RDATable{
	"vitamin_a": {
		Value:        900,
		Unit:         "mcg",
		FemaleAdjust: 0.78,
		Description:  "Supports vision, immune function, and cell growth",
	},
	"vitamin_c": {
		Value:        90,
		Unit:         "mg",
		FemaleAdjust: 0.83,
		Description:  "Antioxidant that supports immune function and collagen production",
	},
	"vitamin_d": {
		Value:        15,
		Unit:         "mcg",
		FemaleAdjust: 1.0,
		Description:  "Crucial for calcium absorption and bone health",
	},
	"vitamin_e": {
		Value:        15,
		Unit:         "mg",
		FemaleAdjust: 1.0,
		Description:  "Antioxidant that protects cells from damage",
	},
	"vitamin_b6": {
		Value:        1.3,
		Unit:         "mg",
		FemaleAdjust: 1.0,
		Description:  "Important for metabolism and brain development",
	},
	"vitamin_b12": {
		Value:        2.4,
		Unit:         "mcg",
		FemaleAdjust: 1.0,
		Description:  "Essential for nerve function and blood cell formation",
	},
	"folate": {
		Value:        400,
		Unit:         "mcg",
		FemaleAdjust: 1.0,
		Description:  "Critical for cell division and DNA synthesis",
	},
	"iron": {
		Value:        8,
		Unit:         "mg",
		FemaleAdjust: 2.25,
		Description:  "Essential for oxygen transport in the blood",
	},
	"calcium": {
		Value:        1000,
		Unit:         "mg",
		FemaleAdjust: 1.0,
		Description:  "Critical for bone health and muscle function",
	},
	"magnesium": {
		Value:        420,
		Unit:         "mg",
		FemaleAdjust: 0.76,
		Description:  "Involved in over 300 biochemical reactions in the body",
	},
	"zinc": {
		Value:        11,
		Unit:         "mg",
		FemaleAdjust: 0.73,
		Description:  "Important for immune function and wound healing",
	},
	"selenium": {
		Value:        55,
		Unit:         "mcg",
		FemaleAdjust: 1.0,
		Description:  "Antioxidant that helps protect cells from damage",
	},
	"copper": {
		Value:        0.9,
		Unit:         "mg",
		FemaleAdjust: 1.0,
		Description:  "Important for red blood cell formation and nerve function",
	},
	"vitamin_b1": {
		Value:        1.2,
		Unit:         "mg",
		FemaleAdjust: 0.92,
		Description:  "Essential for energy metabolism",
	},
	"vitamin_b2": {
		Value:        1.3,
		Unit:         "mg",
		FemaleAdjust: 0.85,
		Description:  "Important for energy production and cell function",
	},
	"vitamin_b3": {
		Value:        16,
		Unit:         "mg",
		FemaleAdjust: 0.875,
		Description:  "Helps convert food into energy",
	},
}

// BaseRDATable returns a fresh copy of the reference intake table.
func BaseRDATable() RDATable {
	table := make(RDATable, len(baseRDAData))
	for key, entry := range baseRDAData {
		table[key] = entry
	}
	return table
}

// CanonicalUnit returns the reference unit for a nutrient key, or "" when
// the key is outside the known vocabulary.
func CanonicalUnit(nutrientKey string) string {
	return baseRDAData[nutrientKey].Unit
}

// KnownNutrient reports whether the key belongs to the tracked vocabulary.
func KnownNutrient(nutrientKey string) bool {
	_, ok := baseRDAData[nutrientKey]
	return ok
}

// MacroTargets is the personalized calorie budget and macro gram targets
// derived from a profile (calorie budget via TDEE, grams via energy split).
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	// Notes carries per-macro guidance shown for long-COVID profiles.
	Notes map[string]string `json:"notes,omitempty"`
}
