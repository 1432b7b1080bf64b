package domain

// UserProfile is the demographic and health record supplied by the host
// application. Zero values mean the field was never provided.
type UserProfile struct {
	Age               int      `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"` // "male" or "female"
	Weight            float64  `json:"weight,omitempty"` // kg
	Height            float64  `json:"height,omitempty"` // cm
	ActivityLevel     string   `json:"activity_level,omitempty"`
	CovidSeverity     string   `json:"covid_severity,omitempty"` // mild|moderate|severe|very severe
	HasLongCovid      bool     `json:"hasLongCovid,omitempty"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
}

// CompleteProfile is a UserProfile after explicit defaulting. Every field
// is populated and normalized, so downstream personalization never repeats
// null-coalescing. Severity is lowercase; empty means no condition.
type CompleteProfile struct {
	Age               int
	Gender            string
	Weight            float64
	Height            float64
	ActivityLevel     string
	CovidSeverity     string
	HasLongCovid      bool
	MedicalConditions []string

	// AgeKnown and BodyKnown record whether age and weight/height were
	// actually supplied, since 0 is not a usable sentinel for either.
	AgeKnown  bool
	BodyKnown bool
}
