package facet

import (
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// The two bucketed facets deliberately follow different membership
// policies. Years in congress is exclusive: every member lands in
// exactly one half-open range. Bills enacted is cumulative: a member
// belongs to every threshold bucket its count meets, except that zero
// belongs only to "none". Counting and matching both depend on this
// asymmetry, so it lives here in one place.

const daysPerYear = 365.25

type yearsRange struct {
	token string
	min   float64
	max   float64 // <0 means unbounded
}

// Ascending threshold order; bucket assignment takes the first match.
var yearsRanges = []yearsRange{
	{"0-2", 0, 2},
	{"2-6", 2, 6},
	{"6-12", 6, 12},
	{"12-20", 12, 20},
	{"20+", 20, -1},
}

type enactedThreshold struct {
	token string
	min   int
}

var enactedThresholds = []enactedThreshold{
	{"atLeast1", 1},
	{"moreThan5", 6},
	{"moreThan10", 11},
	{"moreThan25", 26},
}

// EnactedNone is the exclusive bucket for members with zero enacted
// bills.
const EnactedNone = "none"

var yearsValues = func() []Value {
	vals := make([]Value, 0, len(yearsRanges))
	for _, r := range yearsRanges {
		vals = append(vals, Value{r.token, r.token + " years"})
	}
	return vals
}()

var enactedValues = []Value{
	{EnactedNone, "None"},
	{"atLeast1", "At least 1"},
	{"moreThan5", "More than 5"},
	{"moreThan10", "More than 10"},
	{"moreThan25", "More than 25"},
}

// YearsInCongress computes elapsed years from the member's first term
// start to the evaluation instant, using the 365.25-day average year.
// A missing first term yields zero, the inherited lowest-bucket
// defaulting (strict handling is the caller's concern via Options).
func YearsInCongress(m *models.Member, now time.Time) float64 {
	if m.FirstTermStart == nil {
		return 0
	}
	years := now.Sub(*m.FirstTermStart).Hours() / 24 / daysPerYear
	if years < 0 {
		return 0
	}
	return years
}

// YearsBucket assigns the exclusive bucket token for a years value:
// the first half-open range [min, max) that contains it.
func YearsBucket(years float64) string {
	for _, r := range yearsRanges {
		if years >= r.min && (r.max < 0 || years < r.max) {
			return r.token
		}
	}
	// Unreachable: the ranges cover [0, inf) and negatives are clamped.
	return yearsRanges[0].token
}

// EnactedBuckets returns every bucket token the count belongs to.
// Zero belongs only to "none"; n >= 1 belongs to each threshold bucket
// with min <= n.
func EnactedBuckets(count int) []string {
	if count <= 0 {
		return []string{EnactedNone}
	}
	buckets := make([]string, 0, len(enactedThresholds))
	for _, t := range enactedThresholds {
		if count >= t.min {
			buckets = append(buckets, t.token)
		}
	}
	return buckets
}

// enactedMatches reports whether the count's bucket set intersects the
// selected tokens without materializing the set.
func enactedMatches(count int, selected []string) bool {
	for _, token := range selected {
		if token == EnactedNone {
			if count <= 0 {
				return true
			}
			continue
		}
		for _, t := range enactedThresholds {
			if t.token == token && count >= t.min {
				return true
			}
		}
	}
	return false
}
