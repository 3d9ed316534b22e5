package facet

// Selection is the active filter state: an ordered value set per facet
// plus the favorites-only flag. Within a facet the values are OR'd;
// across facets the constraints are AND'd; an empty set means the
// facet imposes no constraint at all.
type Selection struct {
	values        map[Key][]string
	FavoritesOnly bool
}

// NewSelection returns an empty selection (matches every member).
func NewSelection() Selection {
	return Selection{values: make(map[Key][]string)}
}

// Add appends a token to the facet's set, keeping insertion order and
// ignoring duplicates.
func (s *Selection) Add(key Key, token string) {
	if s.Has(key, token) {
		return
	}
	if s.values == nil {
		s.values = make(map[Key][]string)
	}
	s.values[key] = append(s.values[key], token)
}

// Remove drops a token from the facet's set; absent tokens are a
// no-op.
func (s *Selection) Remove(key Key, token string) {
	current := s.values[key]
	for i, v := range current {
		if v == token {
			s.values[key] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
}

// Toggle adds the token if absent, removes it if present. This is the
// checkbox operation.
func (s *Selection) Toggle(key Key, token string) {
	if s.Has(key, token) {
		s.Remove(key, token)
		return
	}
	s.Add(key, token)
}

// Has reports whether the token is selected for the facet.
func (s *Selection) Has(key Key, token string) bool {
	for _, v := range s.values[key] {
		if v == token {
			return true
		}
	}
	return false
}

// Values returns the facet's selected tokens in insertion order. The
// returned slice is the selection's own; callers must not mutate it.
func (s *Selection) Values(key Key) []string {
	return s.values[key]
}

// Active reports whether the facet constrains matching (has at least
// one selected token).
func (s *Selection) Active(key Key) bool {
	return len(s.values[key]) > 0
}

// Empty reports whether nothing is selected anywhere, favorites flag
// included.
func (s *Selection) Empty() bool {
	if s.FavoritesOnly {
		return false
	}
	for _, vals := range s.values {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *Selection) Clone() Selection {
	out := Selection{
		values:        make(map[Key][]string, len(s.values)),
		FavoritesOnly: s.FavoritesOnly,
	}
	for key, vals := range s.values {
		out.values[key] = append([]string(nil), vals...)
	}
	return out
}
