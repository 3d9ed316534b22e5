package facet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethoz1970/congress-directory/models"
)

func TestEnactedBucketsAreCumulative(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		buckets []string
	}{
		{"zero belongs only to none", 0, []string{"none"}},
		{"one", 1, []string{"atLeast1"}},
		{"five stops below the six threshold", 5, []string{"atLeast1"}},
		{"six", 6, []string{"atLeast1", "moreThan5"}},
		{"eleven", 11, []string{"atLeast1", "moreThan5", "moreThan10"}},
		{"twenty five stops below the top threshold", 25, []string{"atLeast1", "moreThan5", "moreThan10"}},
		{"twenty six meets every threshold", 26, []string{"atLeast1", "moreThan5", "moreThan10", "moreThan25"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.buckets, EnactedBuckets(tt.count))
		})
	}
}

func TestYearsBucketIsExclusive(t *testing.T) {
	// Every value lands in exactly one half-open range.
	samples := []float64{0, 0.1, 1.999, 2, 3, 5.999, 6, 11.9, 12, 19.999, 20, 47.5}
	for _, years := range samples {
		matches := 0
		for _, r := range yearsRanges {
			if years >= r.min && (r.max < 0 || years < r.max) {
				matches++
			}
		}
		require.Equal(t, 1, matches, "years=%v must fall in exactly one range", years)
		assert.True(t, ValidToken(KeyYears, YearsBucket(years)))
	}
}

func TestYearsBucketBoundaries(t *testing.T) {
	assert.Equal(t, "0-2", YearsBucket(0))
	assert.Equal(t, "2-6", YearsBucket(2), "upper bound is exclusive")
	assert.Equal(t, "6-12", YearsBucket(6))
	assert.Equal(t, "12-20", YearsBucket(12))
	assert.Equal(t, "20+", YearsBucket(20))
	assert.Equal(t, "20+", YearsBucket(55))
}

func TestYearsInCongress(t *testing.T) {
	t.Run("uses the average year length", func(t *testing.T) {
		// 730.5 days = exactly two 365.25-day years.
		start := evalNow.Add(-17532 * time.Hour)
		m := models.Member{FirstTermStart: &start}
		years := YearsInCongress(&m, evalNow)
		assert.Equal(t, 2.0, years)
		assert.Equal(t, "2-6", YearsBucket(years))
	})

	t.Run("missing first term counts as zero", func(t *testing.T) {
		m := models.Member{}
		assert.Equal(t, 0.0, YearsInCongress(&m, evalNow))
		assert.Equal(t, "0-2", YearsBucket(YearsInCongress(&m, evalNow)))
	})

	t.Run("future first term clamps to zero", func(t *testing.T) {
		start := evalNow.Add(24 * time.Hour)
		m := models.Member{FirstTermStart: &start}
		assert.Equal(t, 0.0, YearsInCongress(&m, evalNow))
	})
}
