package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const governorJSON = `{
	"id_external": {
		"wikipedia": "Kathy Hochul",
		"ballotpedia": "Kathy Hochul",
		"twitter": "GovKathyHochul",
		"youtube": "prior: KathyHochul",
		"facebook": "GovKathyHochul"
	},
	"name": {"first": "Kathy", "last": "Hochul", "official_full": "Kathy Hochul"},
	"bio": {"birthday": "1958-08-27", "gender": "F"},
	"photo_url": "https://example.org/hochul.jpg",
	"terms": [
		{"type": "gov", "start": "2021-08-24", "end": "2023-01-01", "state": "NY", "party": "Democrat"},
		{"type": "gov", "start": "2023-01-01", "end": "2027-01-01", "state": "NY", "party": "Democrat",
		 "url": "https://www.governor.ny.gov"}
	]
}`

func TestBuildGovernor(t *testing.T) {
	var raw rawGovernor
	require.NoError(t, json.Unmarshal([]byte(governorJSON), &raw))

	gov := buildGovernor(raw)
	require.NotNil(t, gov)

	// Governors get synthetic ids so they can live in the same table.
	assert.Equal(t, "GOV-NY", gov.BioguideID)
	assert.Equal(t, "Governor", gov.Chamber)
	assert.Equal(t, "NY", gov.State)
	assert.Equal(t, "Kathy Hochul", gov.FullName)
	assert.Equal(t, "Democrat", gov.Party)

	require.NotNil(t, gov.TermStart)
	assert.Equal(t, "2023-01-01", gov.TermStart.Format("2006-01-02"), "current term is the last one")
	require.NotNil(t, gov.PhotoURL)
	assert.Equal(t, "https://example.org/hochul.jpg", *gov.PhotoURL)
	require.NotNil(t, gov.Website)
	assert.Equal(t, "https://www.governor.ny.gov", *gov.Website)

	assert.Equal(t, "Kathy Hochul", gov.ExternalIDs.Wikipedia)
	assert.Equal(t, "GovKathyHochul", gov.ExternalIDs.Twitter)
	assert.Equal(t, "", gov.ExternalIDs.YouTube, "prior handles are dropped")
	assert.Equal(t, "GovKathyHochul", gov.ExternalIDs.Facebook)
}

func TestBuildGovernorNoTerms(t *testing.T) {
	var raw rawGovernor
	assert.Nil(t, buildGovernor(raw))
}

func TestDropPriorHandle(t *testing.T) {
	assert.Equal(t, "GovPressOffice", dropPriorHandle("GovPressOffice"))
	assert.Equal(t, "", dropPriorHandle("prior: OldAccount"))
	assert.Equal(t, "", dropPriorHandle("Prior: OldAccount"))
	assert.Equal(t, "", dropPriorHandle(""), "empty stays empty")
}
