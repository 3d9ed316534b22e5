package facet

import (
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// evalNow is the fixed evaluation instant used across the engine
// tests so year bucketing is deterministic.
var evalNow = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func scorePtr(f float64) *float64 {
	return &f
}

// firstTermYearsAgo returns a first term start that evaluates to the
// given number of 365.25-day years before evalNow.
func firstTermYearsAgo(years float64) *time.Time {
	t := evalNow.Add(-time.Duration(years * daysPerYear * 24 * float64(time.Hour)))
	return &t
}

func lastNames(members []models.Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.LastName
	}
	return names
}

func bioguideIDs(members []models.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.BioguideID
	}
	return ids
}

func reversed(members []models.Member) []models.Member {
	out := make([]models.Member, len(members))
	for i, m := range members {
		out[len(members)-1-i] = m
	}
	return out
}
