package domain

// JournalEntry is one logged meal as stored in the food journal.
// Edits are full replaces, never partial patches; deletion is by ID.
type JournalEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // h:mm AM/PM
	MealType string `json:"mealType"`

	Protein  FlexFloat `json:"protein"`
	Carbs    FlexFloat `json:"carbs"`
	Fat      FlexFloat `json:"fat"`
	Calories FlexFloat `json:"calories"`

	Micronutrients NutrientMap `json:"micronutrients,omitempty"`

	LongCovidAdjust   bool     `json:"longCovidAdjust,omitempty"`
	LongCovidBenefits []string `json:"longCovidBenefits,omitempty"`
	LongCovidCautions []string `json:"longCovidCautions,omitempty"`

	// MetabolicEfficiency is attached once at log/edit time and stored.
	// It is never recomputed when the profile later changes; historical
	// entries keep the score from the time of logging.
	MetabolicEfficiency float64 `json:"metabolicEfficiency"`
}

// MacroTotals holds summed macronutrients for one aggregation bucket.
type MacroTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// BucketTotals is the aggregation output for one time bucket.
type BucketTotals struct {
	Macros     MacroTotals                `json:"macros"`
	Micros     map[string]NutrientReading `json:"micros"`
	EntryCount int                        `json:"entryCount"`
	// Flags records data-quality conditions (clamped ceilings, unknown
	// unit conversions) observed while building this bucket.
	Flags []string `json:"flags,omitempty"`
}

// NutrientStatus is the qualitative bucket for a percent-of-RDA value.
type NutrientStatus string

const (
	StatusOptimal  NutrientStatus = "Optimal"
	StatusGood     NutrientStatus = "Good"
	StatusModerate NutrientStatus = "Moderate"
	StatusLow      NutrientStatus = "Low"
	StatusVeryLow  NutrientStatus = "Very Low"
)

// NutrientClassification pairs a rounded percent-of-RDA with its status
// bucket and display color, consumed uniformly by chart and summary views.
type NutrientClassification struct {
	Percent int            `json:"percent"`
	Status  NutrientStatus `json:"status"`
	Color   string         `json:"color"`
}
