package usecase

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/nutritrack/backend/internal/domain"
)

// Bucketing selects the time-grouping granularity for aggregation.
type Bucketing string

const (
	BucketDay   Bucketing = "day"
	BucketWeek  Bucketing = "week"
	BucketMonth Bucketing = "month"
)

// macroFieldNames are keys that may leak into stored micronutrient maps
// from the macro fields of the same document. They are skipped during
// micronutrient accumulation to avoid double-counting.
var macroFieldNames = map[string]bool{
	"protein": true, "carbs": true, "fat": true,
	"calories": true, "name": true, "unit": true,
}

// reasonableMaxCeilings caps a single entry's contribution per nutrient,
// in the nutrient's canonical unit. A value above its ceiling is truncated,
// flagged as suspicious, and still counted, so one bad entry cannot blow up
// a whole chart's scale. Product-configurable constants, not physiology.
var reasonableMaxCeilings = map[string]float64{
	"zinc":      50,
	"selenium":  400,
	"copper":    10,
	"iron":      100,
	"vitamin_c": 2000,
	"vitamin_d": 100,
	"calcium":   3000,
	"magnesium": 1000,
}

const defaultCeiling = 10000

// AggregateJournal sums macro and micronutrient intake per time bucket for
// entries whose calendar date falls within [windowStart, windowEnd]. Dates
// are compared as local calendar dates, never through UTC, so an entry on
// the window's start date is included regardless of timezone offset.
// Empty input yields an empty map, not an error.
func AggregateJournal(entries []domain.JournalEntry, windowStart, windowEnd time.Time, bucketing Bucketing) map[string]domain.BucketTotals {
	buckets := make(map[string]domain.BucketTotals)

	startDay := truncateToDay(windowStart)
	endDay := truncateToDay(windowEnd)

	for _, entry := range entries {
		entryDay, ok := parseLocalDate(entry.Date)
		if !ok {
			log.Printf("[JOURNAL] skipping entry %q with unparseable date %q", entry.ID, entry.Date)
			continue
		}
		if entryDay.Before(startDay) || entryDay.After(endDay) {
			continue
		}

		key := bucketKey(entry.Date, entryDay, bucketing)
		bucket := buckets[key]
		if bucket.Micros == nil {
			bucket.Micros = make(map[string]domain.NutrientReading)
		}

		bucket.Macros.Protein += float64(entry.Protein)
		bucket.Macros.Carbs += float64(entry.Carbs)
		bucket.Macros.Fat += float64(entry.Fat)
		bucket.Macros.Calories += float64(entry.Calories)
		bucket.EntryCount++

		accumulateMicros(&bucket, entry.Micronutrients)

		buckets[key] = bucket
	}

	return buckets
}

// accumulateMicros normalizes and sums one entry's micronutrients into the
// bucket, applying the collision skip and the reasonable-maximum ceilings.
func accumulateMicros(bucket *domain.BucketTotals, micros domain.NutrientMap) {
	for key, amount := range micros {
		if macroFieldNames[strings.ToLower(key)] {
			continue
		}

		referenceUnit := domain.CanonicalUnit(key)
		if referenceUnit == "" {
			// Unknown nutrient: pass through in its own unit (or mg when
			// no unit was recorded). Excluded from RDA comparison later.
			referenceUnit = "mg"
			if amount.Kind == domain.AmountReading && amount.Reading.Unit != "" {
				referenceUnit = amount.Reading.Unit
			}
		}

		reading := NormalizeNutrient(amount, referenceUnit, key)

		if reading.Unit != referenceUnit {
			bucket.Flags = append(bucket.Flags,
				fmt.Sprintf("%s: unconverted unit %q (reference %q)", key, reading.Unit, referenceUnit))
		}

		value := reading.Value
		if value < 0 {
			bucket.Flags = append(bucket.Flags,
				fmt.Sprintf("%s: negative value %s dropped", key, formatValue(value)))
			value = 0
		}

		ceiling, ok := reasonableMaxCeilings[key]
		if !ok {
			ceiling = defaultCeiling
		}
		if value > ceiling {
			bucket.Flags = append(bucket.Flags,
				fmt.Sprintf("%s: %s %s clamped to ceiling %s", key, formatValue(value), reading.Unit, formatValue(ceiling)))
			log.Printf("[JOURNAL] suspicious %s value %g %s (ceiling %g), truncating", key, value, reading.Unit, ceiling)
			value = ceiling
		}

		total := bucket.Micros[key]
		total.Value += value
		total.Unit = reading.Unit
		bucket.Micros[key] = total
	}
}

// bucketKey derives the grouping key for one entry date.
func bucketKey(dateString string, day time.Time, bucketing Bucketing) string {
	switch bucketing {
	case BucketWeek:
		weekStart := day.AddDate(0, 0, -int(day.Weekday())) // Sunday-aligned
		return weekStart.Format("2006-01-02")
	case BucketMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).Format("2006-01-02")
	default:
		return dateString
	}
}

// parseLocalDate parses YYYY-MM-DD as a local calendar date. Parsing through
// a UTC-interpreting constructor would shift the date by a day in western
// timezones.
func parseLocalDate(dateString string) (time.Time, bool) {
	parts := strings.Split(dateString, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

func truncateToDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
