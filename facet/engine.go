package facet

import (
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// Query is one full engine invocation: everything the evaluation
// depends on is passed in, including the clock. Favorites is the
// requesting user's set of bioguide ids; nil reads as no favorites.
type Query struct {
	Selection Selection
	Sort      SortSpec
	Favorites map[string]bool
	Now       time.Time
	Options   Options
}

// Result is the full render payload for one evaluation.
type Result struct {
	Members  []models.Member     `json:"members"`
	Counts   map[Key]ValueCounts `json:"facet_counts"`
	Filtered int                 `json:"filtered"`
	Total    int                 `json:"total"`
	Ratio    float64             `json:"ratio"`
}

// Evaluate runs the whole engine pass over the snapshot: predicate,
// sort, and faceted counts. The snapshot is never mutated; the result
// holds copies. Filtered counts the served members, so a sort key with
// removal semantics (ideology, strict age/years) shrinks it below the
// predicate's match count.
func Evaluate(snapshot []models.Member, q Query) Result {
	if q.Now.IsZero() {
		q.Now = time.Now()
	}

	matched := make([]models.Member, 0, len(snapshot))
	for i := range snapshot {
		if Matches(&snapshot[i], q.Selection, q.Favorites, q.Now, q.Options) {
			matched = append(matched, snapshot[i])
		}
	}
	matched = Sort(matched, q.Sort, q.Now, q.Options)

	result := Result{
		Members:  matched,
		Counts:   Counts(snapshot, q.Selection, q.Favorites, q.Now, q.Options),
		Filtered: len(matched),
		Total:    len(snapshot),
	}
	if result.Total > 0 {
		result.Ratio = float64(result.Filtered) / float64(result.Total)
	}
	return result
}
