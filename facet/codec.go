package facet

import (
	"net/url"
	"strings"
)

// The selection mirrors into a flat query string so directory views
// stay shareable: one comma-joined list per facet key, plus
// favorites=true, sort, and direction. Decoding is deliberately
// permissive: unknown or malformed tokens are dropped without error so
// old links keep working when the facet definitions evolve. Encoding
// then decoding reproduces any selection built from valid tokens.

const (
	paramFavorites = "favorites"
	paramSort      = "sort"
	paramDirection = "direction"
)

// ParseQuery decodes a query string into a selection and sort spec.
func ParseQuery(query url.Values) (Selection, SortSpec) {
	sel := NewSelection()
	for _, key := range Keys {
		raw := query.Get(string(key))
		if raw == "" {
			continue
		}
		for _, token := range strings.Split(raw, ",") {
			if ValidToken(key, token) {
				sel.Add(key, token)
			}
		}
	}
	sel.FavoritesOnly = query.Get(paramFavorites) == "true"

	var spec SortSpec
	if key, ok := ParseSortKey(query.Get(paramSort)); ok {
		spec.Key = key
		spec.Direction = DefaultDirection(key)
		if dir, ok := ParseDirection(query.Get(paramDirection)); ok {
			spec.Direction = dir
		}
	}
	return sel, spec
}

// EncodeQuery is the inverse of ParseQuery. Empty facets, the false
// favorites flag, and the zero sort spec are omitted entirely.
func EncodeQuery(sel Selection, spec SortSpec) url.Values {
	query := url.Values{}
	for _, key := range Keys {
		if values := sel.Values(key); len(values) > 0 {
			query.Set(string(key), strings.Join(values, ","))
		}
	}
	if sel.FavoritesOnly {
		query.Set(paramFavorites, "true")
	}
	if spec.Key != "" {
		query.Set(paramSort, string(spec.Key))
		direction := spec.Direction
		if direction == "" {
			direction = DefaultDirection(spec.Key)
		}
		query.Set(paramDirection, string(direction))
	}
	return query
}
