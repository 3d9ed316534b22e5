package facet

import (
	"sort"
	"strings"
	"time"

	"github.com/ethoz1970/congress-directory/models"
)

// SortKey selects one comparator from the fixed table.
type SortKey string

const (
	SortName      SortKey = "name"
	SortAge       SortKey = "age"
	SortTerms     SortKey = "terms"
	SortYears     SortKey = "years"
	SortEnacted   SortKey = "enacted"
	SortSponsored SortKey = "sponsored"
	SortIdeology  SortKey = "ideology"
	SortState     SortKey = "state"
)

// SortKeys lists every selectable sort key.
var SortKeys = []SortKey{
	SortName, SortAge, SortTerms, SortYears,
	SortEnacted, SortSponsored, SortIdeology, SortState,
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func (d Direction) Inverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortSpec is the active sort key and direction. The zero value means
// "no sort": the snapshot order is served as-is.
type SortSpec struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// Select applies the header-click rule: re-selecting the active key
// toggles the direction, selecting a different key resets the
// direction to that key's default.
func (s *SortSpec) Select(key SortKey) {
	if s.Key == key {
		s.Direction = s.Direction.Inverse()
		return
	}
	s.Key = key
	s.Direction = DefaultDirection(key)
}

// DefaultDirection returns the direction a freshly selected key starts
// with. The count keys read most-first by default via the descending
// flag; terms and years read most-first under "asc" instead because
// their base comparators are reversed (see baseCompare).
func DefaultDirection(key SortKey) Direction {
	switch key {
	case SortEnacted, SortSponsored:
		return Descending
	}
	return Ascending
}

// ParseSortKey maps a query token to its sort key.
func ParseSortKey(token string) (SortKey, bool) {
	for _, k := range SortKeys {
		if string(k) == token {
			return k, true
		}
	}
	return "", false
}

// ParseDirection maps a query token to a direction.
func ParseDirection(token string) (Direction, bool) {
	switch Direction(token) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	}
	return "", false
}

// Sort orders members by the selected key's comparator, reordering the
// slice in place and returning it. Two keys shrink the slice before
// ordering: ideology always drops members without a score, and under
// strict Options the age and years keys drop members missing the
// backing date. Ties keep their incoming order (stable sort).
func Sort(members []models.Member, spec SortSpec, now time.Time, opts Options) []models.Member {
	if spec.Key == "" {
		return members
	}

	switch spec.Key {
	case SortIdeology:
		members = keep(members, func(m *models.Member) bool { return m.IdeologyScore != nil })
	case SortAge:
		if opts.ExcludeMissingBirthday {
			members = keep(members, func(m *models.Member) bool { return m.Birthday != nil })
		}
	case SortYears:
		if opts.ExcludeMissingFirstTerm {
			members = keep(members, func(m *models.Member) bool { return m.FirstTermStart != nil })
		}
	}

	direction := spec.Direction
	if direction == "" {
		direction = DefaultDirection(spec.Key)
	}
	mult := 1
	if direction == Descending {
		mult = -1
	}

	sort.SliceStable(members, func(i, j int) bool {
		return mult*baseCompare(spec.Key, &members[i], &members[j], now) < 0
	})
	return members
}

// baseCompare is the fixed comparator table. Each entry defines the
// key's base polarity; the direction flag inverts the sign afterwards,
// uniformly. Terms and years are reversed on purpose (more first under
// the base polarity) to match the directory's long-standing behavior;
// the other numeric keys compare naturally and rely on their default
// direction instead.
func baseCompare(key SortKey, a, b *models.Member, now time.Time) int {
	switch key {
	case SortName:
		return strings.Compare(a.LastName, b.LastName)
	case SortAge:
		// Earlier birthday first. Missing birthday counts as the
		// epoch, which sorts those members as maximally old.
		return compareInt64(birthUnix(a), birthUnix(b))
	case SortTerms:
		return compareInt(b.TotalTerms, a.TotalTerms)
	case SortYears:
		return compareFloat(YearsInCongress(b, now), YearsInCongress(a, now))
	case SortEnacted:
		return compareInt(a.EnactedCount, b.EnactedCount)
	case SortSponsored:
		return compareInt(a.SponsoredCount, b.SponsoredCount)
	case SortIdeology:
		return compareFloat(ideologyOf(a), ideologyOf(b))
	case SortState:
		return strings.Compare(a.State, b.State)
	}
	return 0
}

func birthUnix(m *models.Member) int64 {
	if m.Birthday == nil {
		return 0
	}
	return m.Birthday.Unix()
}

// ideologyOf is only reached after scoreless members were dropped, but
// stays nil-safe for direct comparator use.
func ideologyOf(m *models.Member) float64 {
	if m.IdeologyScore == nil {
		return 0
	}
	return *m.IdeologyScore
}

func keep(members []models.Member, pred func(*models.Member) bool) []models.Member {
	kept := members[:0]
	for i := range members {
		if pred(&members[i]) {
			kept = append(kept, members[i])
		}
	}
	return kept
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
