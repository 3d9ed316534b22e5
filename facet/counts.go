package facet

import (
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// ValueCounts maps a facet token to its candidate count.
type ValueCounts map[string]int

// Counts computes, for every facet token, how many members would match
// if the counted facet's own selection were cleared and every other
// active constraint kept. The counts drive the "(37)" affordances next
// to the sidebar checkboxes; they never feed back into matching.
//
// Every enumerated token appears in the output, zeros included, so the
// sidebar renders a complete list. A member qualifying for the enacted
// facet increments every bucket it belongs to (cumulative policy); for
// all other facets it increments exactly one counter.
func Counts(snapshot []models.Member, sel Selection, favorites map[string]bool, now time.Time, opts Options) map[Key]ValueCounts {
	out := make(map[Key]ValueCounts, len(Keys))
	for _, def := range definitions {
		counts := make(ValueCounts, len(def.Values))
		for _, v := range def.Values {
			counts[v.Token] = 0
		}
		for i := range snapshot {
			m := &snapshot[i]
			if !matchesExcept(m, sel, def.Key, favorites, now, opts) {
				continue
			}
			switch def.Key {
			case KeyYears:
				if opts.ExcludeMissingFirstTerm && m.FirstTermStart == nil {
					continue
				}
				counts[YearsBucket(YearsInCongress(m, now))]++
			case KeyEnacted:
				for _, bucket := range EnactedBuckets(m.EnactedCount) {
					counts[bucket]++
				}
			default:
				token := rawToken(m, def.Key)
				if _, known := counts[token]; known {
					counts[token]++
				}
			}
		}
		out[def.Key] = counts
	}
	return out
}

// rawToken reads the member attribute backing a non-bucketed facet.
func rawToken(m *models.Member, key Key) string {
	switch key {
	case KeyChamber:
		return m.Chamber
	case KeyState:
		return m.State
	case KeyParty:
		return m.Party
	case KeyGender:
		return m.Gender
	}
	return ""
}
