package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ethoz1970/congress-directory/models"
)

func TestEmptySelectionMatchesEveryone(t *testing.T) {
	members := []models.Member{
		{BioguideID: "A01", State: "CA", Chamber: "Senate", Party: "Democrat", Gender: "F"},
		{BioguideID: "B02", State: "TX", Chamber: "House", Party: "Republican", Gender: "M"},
		{BioguideID: "C03"}, // every attribute empty
	}
	sel := NewSelection()
	for _, m := range members {
		assert.True(t, Matches(&m, sel, nil, evalNow, Options{}), "member %s", m.BioguideID)
	}
}

func TestSingleFacetMatchesRawAttribute(t *testing.T) {
	m := models.Member{
		BioguideID: "A01",
		State:      "CA",
		Chamber:    "Senate",
		Party:      "Democrat",
		Gender:     "F",
	}
	tests := []struct {
		name    string
		key     Key
		token   string
		matches bool
	}{
		{"chamber equal", KeyChamber, "Senate", true},
		{"chamber different", KeyChamber, "House", false},
		{"state equal", KeyState, "CA", true},
		{"state different", KeyState, "TX", false},
		{"party equal", KeyParty, "Democrat", true},
		{"party different", KeyParty, "Republican", false},
		{"gender equal", KeyGender, "F", true},
		{"gender different", KeyGender, "M", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection()
			sel.Add(tt.key, tt.token)
			assert.Equal(t, tt.matches, Matches(&m, sel, nil, evalNow, Options{}))
		})
	}
}

func TestSelectionIsOrWithinAndAcrossFacets(t *testing.T) {
	ca := models.Member{BioguideID: "A01", State: "CA", Party: "Democrat"}
	tx := models.Member{BioguideID: "B02", State: "TX", Party: "Republican"}
	ny := models.Member{BioguideID: "C03", State: "NY", Party: "Democrat"}

	sel := NewSelection()
	sel.Add(KeyState, "CA")
	sel.Add(KeyState, "TX")
	assert.True(t, Matches(&ca, sel, nil, evalNow, Options{}), "OR within state")
	assert.True(t, Matches(&tx, sel, nil, evalNow, Options{}), "OR within state")
	assert.False(t, Matches(&ny, sel, nil, evalNow, Options{}))

	sel.Add(KeyParty, "Democrat")
	assert.True(t, Matches(&ca, sel, nil, evalNow, Options{}), "CA and Democrat")
	assert.False(t, Matches(&tx, sel, nil, evalNow, Options{}), "TX but not Democrat")
}

func TestEnactedFacetUsesBucketIntersection(t *testing.T) {
	none := models.Member{BioguideID: "A01", EnactedCount: 0}
	six := models.Member{BioguideID: "B02", EnactedCount: 6}
	thirty := models.Member{BioguideID: "C03", EnactedCount: 30}

	t.Run("threshold bucket", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(KeyEnacted, "moreThan5")
		assert.False(t, Matches(&none, sel, nil, evalNow, Options{}))
		assert.True(t, Matches(&six, sel, nil, evalNow, Options{}))
		assert.True(t, Matches(&thirty, sel, nil, evalNow, Options{}))
	})

	t.Run("none is exclusive to zero", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(KeyEnacted, EnactedNone)
		assert.True(t, Matches(&none, sel, nil, evalNow, Options{}))
		assert.False(t, Matches(&six, sel, nil, evalNow, Options{}))
	})

	t.Run("multi value selection intersects the bucket set", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(KeyEnacted, EnactedNone)
		sel.Add(KeyEnacted, "moreThan25")
		assert.True(t, Matches(&none, sel, nil, evalNow, Options{}))
		assert.False(t, Matches(&six, sel, nil, evalNow, Options{}), "six is in neither selected bucket")
		assert.True(t, Matches(&thirty, sel, nil, evalNow, Options{}))
	})
}

func TestYearsFacetAssignsOneBucket(t *testing.T) {
	rookie := models.Member{BioguideID: "A01", FirstTermStart: firstTermYearsAgo(1)}
	veteran := models.Member{BioguideID: "B02", FirstTermStart: firstTermYearsAgo(15)}
	undated := models.Member{BioguideID: "C03"}

	sel := NewSelection()
	sel.Add(KeyYears, "0-2")
	assert.True(t, Matches(&rookie, sel, nil, evalNow, Options{}))
	assert.False(t, Matches(&veteran, sel, nil, evalNow, Options{}))
	assert.True(t, Matches(&undated, sel, nil, evalNow, Options{}),
		"missing first term defaults into the lowest bucket")

	sel = NewSelection()
	sel.Add(KeyYears, "12-20")
	assert.True(t, Matches(&veteran, sel, nil, evalNow, Options{}))
	assert.False(t, Matches(&rookie, sel, nil, evalNow, Options{}))
}

func TestStrictMissingFirstTermExcludesFromYearsFacet(t *testing.T) {
	undated := models.Member{BioguideID: "C03"}
	strict := Options{ExcludeMissingFirstTerm: true}

	sel := NewSelection()
	sel.Add(KeyYears, "0-2")
	assert.False(t, Matches(&undated, sel, nil, evalNow, strict),
		"strict mode removes undated members from the years facet")

	// Without a years selection the option has no effect.
	assert.True(t, Matches(&undated, NewSelection(), nil, evalNow, strict))
}

func TestFavoritesOnlyRequiresMembership(t *testing.T) {
	m := models.Member{BioguideID: "A01", State: "CA"}
	sel := NewSelection()
	sel.FavoritesOnly = true

	assert.False(t, Matches(&m, sel, nil, evalNow, Options{}), "nil favorites reads as none")
	assert.False(t, Matches(&m, sel, map[string]bool{"B02": true}, evalNow, Options{}))
	assert.True(t, Matches(&m, sel, map[string]bool{"A01": true}, evalNow, Options{}))

	// Favorites combines with facet constraints like any other AND term.
	sel.Add(KeyState, "TX")
	assert.False(t, Matches(&m, sel, map[string]bool{"A01": true}, evalNow, Options{}))
}
