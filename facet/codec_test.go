package facet

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRoundTrip(t *testing.T) {
	sel := NewSelection()
	sel.Add(KeyChamber, "Senate")
	sel.Add(KeyState, "CA")
	sel.Add(KeyState, "TX")
	sel.Add(KeyParty, "Independent")
	sel.Add(KeyGender, "F")
	sel.Add(KeyYears, "6-12")
	sel.Add(KeyYears, "20+")
	sel.Add(KeyEnacted, "moreThan10")
	sel.FavoritesOnly = true
	spec := SortSpec{Key: SortYears, Direction: Descending}

	encoded := EncodeQuery(sel, spec)
	decodedSel, decodedSpec := ParseQuery(encoded)

	for _, key := range Keys {
		assert.Equal(t, sel.Values(key), decodedSel.Values(key), "facet %s", key)
	}
	assert.True(t, decodedSel.FavoritesOnly)
	assert.Equal(t, spec, decodedSpec)
}

func TestParseDropsUnknownTokensSilently(t *testing.T) {
	query := url.Values{}
	query.Set("state", "CA,XX,TX")
	query.Set("years", "0-2,banana")
	query.Set("enacted", "everything")

	sel, _ := ParseQuery(query)

	assert.Equal(t, []string{"CA", "TX"}, sel.Values(KeyState), "unknown token dropped, the rest preserved")
	assert.Equal(t, []string{"0-2"}, sel.Values(KeyYears))
	assert.False(t, sel.Active(KeyEnacted))
}

func TestParseIgnoresUnknownFacetKeysAndEmptyValues(t *testing.T) {
	query := url.Values{}
	query.Set("flavor", "spicy")
	query.Set("state", "")

	sel, spec := ParseQuery(query)

	assert.True(t, sel.Empty())
	assert.Equal(t, SortSpec{}, spec)
}

func TestParseDeduplicatesTokens(t *testing.T) {
	query := url.Values{}
	query.Set("state", "CA,CA,TX,CA")

	sel, _ := ParseQuery(query)

	assert.Equal(t, []string{"CA", "TX"}, sel.Values(KeyState))
	assert.Equal(t, "CA,TX", EncodeQuery(sel, SortSpec{}).Get("state"))
}

func TestParseSortDefaults(t *testing.T) {
	t.Run("missing direction uses the key default", func(t *testing.T) {
		_, spec := ParseQuery(url.Values{"sort": {"enacted"}})
		assert.Equal(t, SortSpec{Key: SortEnacted, Direction: Descending}, spec)

		_, spec = ParseQuery(url.Values{"sort": {"name"}})
		assert.Equal(t, SortSpec{Key: SortName, Direction: Ascending}, spec)
	})

	t.Run("explicit direction wins", func(t *testing.T) {
		_, spec := ParseQuery(url.Values{"sort": {"enacted"}, "direction": {"asc"}})
		assert.Equal(t, SortSpec{Key: SortEnacted, Direction: Ascending}, spec)
	})

	t.Run("unknown sort key yields no sort", func(t *testing.T) {
		_, spec := ParseQuery(url.Values{"sort": {"height"}, "direction": {"desc"}})
		assert.Equal(t, SortSpec{}, spec)
	})

	t.Run("unknown direction falls back to the key default", func(t *testing.T) {
		_, spec := ParseQuery(url.Values{"sort": {"sponsored"}, "direction": {"sideways"}})
		assert.Equal(t, SortSpec{Key: SortSponsored, Direction: Descending}, spec)
	})
}

func TestFavoritesFlagParsing(t *testing.T) {
	sel, _ := ParseQuery(url.Values{"favorites": {"true"}})
	assert.True(t, sel.FavoritesOnly)

	sel, _ = ParseQuery(url.Values{"favorites": {"yes"}})
	assert.False(t, sel.FavoritesOnly, "only the literal true enables the flag")

	encoded := EncodeQuery(NewSelection(), SortSpec{})
	_, present := encoded["favorites"]
	assert.False(t, present, "false flag is omitted")
}

func TestEncodeOmitsEmptyState(t *testing.T) {
	encoded := EncodeQuery(NewSelection(), SortSpec{})
	require.Empty(t, encoded)

	sel := NewSelection()
	sel.Add(KeyChamber, "House")
	encoded = EncodeQuery(sel, SortSpec{})
	assert.Equal(t, "chamber=House", encoded.Encode())
}
