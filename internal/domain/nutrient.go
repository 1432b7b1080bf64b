package domain

import (
	"encoding/json"
	"strconv"
)

// NutrientReading is one nutrient amount expressed in a concrete unit.
// Readings are immutable once produced; aggregation always re-derives them.
type NutrientReading struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// AmountKind discriminates the shapes a stored nutrient value can take.
// The persistence schema was never validated, so a value may arrive as a
// {value, unit} object, a bare number, a numeric string, or be absent.
type AmountKind int

const (
	AmountAbsent AmountKind = iota
	AmountNumber
	AmountText
	AmountReading
)

// NutrientAmount is the tagged union for a raw nutrient value. Decoding
// happens exactly once, here; downstream code switches on Kind instead of
// sniffing types at every use site.
type NutrientAmount struct {
	Kind    AmountKind
	Number  float64
	Text    string
	Reading NutrientReading
}

// AmountFromReading builds a NutrientAmount from a concrete reading.
func AmountFromReading(value float64, unit string) NutrientAmount {
	return NutrientAmount{Kind: AmountReading, Reading: NutrientReading{Value: value, Unit: unit}}
}

// AmountFromNumber builds a NutrientAmount from a bare number.
func AmountFromNumber(value float64) NutrientAmount {
	return NutrientAmount{Kind: AmountNumber, Number: value}
}

// AmountFromText builds a NutrientAmount from a numeric string.
func AmountFromText(text string) NutrientAmount {
	return NutrientAmount{Kind: AmountText, Text: text}
}

// UnmarshalJSON decodes any of the shapes found in stored journal documents.
// Unrecognized shapes decode as absent rather than failing the whole entry.
func (a *NutrientAmount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = NutrientAmount{Kind: AmountAbsent}
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*a = NutrientAmount{Kind: AmountNumber, Number: v}
	case string:
		*a = NutrientAmount{Kind: AmountText, Text: v}
	case map[string]interface{}:
		value, hasValue := v["value"]
		unit, hasUnit := v["unit"].(string)
		if !hasValue || !hasUnit {
			*a = NutrientAmount{Kind: AmountAbsent}
			return nil
		}
		*a = NutrientAmount{
			Kind:    AmountReading,
			Reading: NutrientReading{Value: coerceFloat(value), Unit: unit},
		}
	default:
		*a = NutrientAmount{Kind: AmountAbsent}
	}
	return nil
}

// MarshalJSON writes the amount back in the shape it was decoded from.
func (a NutrientAmount) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AmountNumber:
		return json.Marshal(a.Number)
	case AmountText:
		return json.Marshal(a.Text)
	case AmountReading:
		return json.Marshal(a.Reading)
	default:
		return []byte("null"), nil
	}
}

// coerceFloat converts a decoded JSON value to a float64, degrading to 0.
func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// NutrientMap maps a nutrient key (e.g. "vitamin_c", "iron") to its raw
// amount. Keys outside the known vocabulary pass through untouched but are
// excluded from RDA comparison.
type NutrientMap map[string]NutrientAmount

// FlexFloat is a float64 that tolerates numeric strings in stored
// documents. Parse failures degrade to 0, never to an error.
type FlexFloat float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(coerceFloat(raw))
	return nil
}

// MarshalJSON always writes a plain number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}
