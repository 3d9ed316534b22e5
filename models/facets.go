// models/facets.go
package models

// FilterMetadata represents all sidebar filter data for the directory
type FilterMetadata struct {
	Facets   []FacetBlock `json:"facets"`
	Filtered int          `json:"filtered"`
	Total    int          `json:"total"`
}

// FacetBlock is one filter group in display order
type FacetBlock struct {
	Key    string       `json:"key"`
	Label  string       `json:"label"`
	Values []FacetValue `json:"values"`
}

// FacetValue is one checkbox row: the URL token, its display label, and
// the count the engine produced for it under the current selection
type FacetValue struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
