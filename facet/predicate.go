package facet

import (
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// noKey marks "mask nothing" for matchesExcept.
const noKey Key = ""

// Matches reports whether the member satisfies every active facet
// constraint plus the favorites-only flag. An empty selection matches
// everything.
func Matches(m *models.Member, sel Selection, favorites map[string]bool, now time.Time, opts Options) bool {
	return matchesExcept(m, sel, noKey, favorites, now, opts)
}

// matchesExcept is Matches with one facet masked out. The faceted
// count aggregator masks the facet it is counting; the favorites flag
// is never masked because it is not a counted facet.
func matchesExcept(m *models.Member, sel Selection, masked Key, favorites map[string]bool, now time.Time, opts Options) bool {
	if sel.FavoritesOnly && !favorites[m.BioguideID] {
		return false
	}
	for _, key := range Keys {
		if key == masked || !sel.Active(key) {
			continue
		}
		if !facetMatches(m, key, sel.Values(key), now, opts) {
			return false
		}
	}
	return true
}

// facetMatches evaluates one facet's OR over its selected tokens.
func facetMatches(m *models.Member, key Key, selected []string, now time.Time, opts Options) bool {
	switch key {
	case KeyChamber:
		return containsToken(selected, m.Chamber)
	case KeyState:
		return containsToken(selected, m.State)
	case KeyParty:
		return containsToken(selected, m.Party)
	case KeyGender:
		return containsToken(selected, m.Gender)
	case KeyYears:
		if opts.ExcludeMissingFirstTerm && m.FirstTermStart == nil {
			return false
		}
		return containsToken(selected, YearsBucket(YearsInCongress(m, now)))
	case KeyEnacted:
		return enactedMatches(m.EnactedCount, selected)
	}
	return false
}

func containsToken(selected []string, value string) bool {
	for _, v := range selected {
		if v == value {
			return true
		}
	}
	return false
}
