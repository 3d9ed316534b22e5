package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const senatorJSON = `{
	"id": {"bioguide": "C000127", "govtrack": 300018, "opensecrets": "N00007836", "wikipedia": "Maria Cantwell"},
	"name": {"first": "Maria", "last": "Cantwell", "official_full": "Maria Cantwell"},
	"bio": {"birthday": "1958-10-13", "gender": "F"},
	"terms": [
		{"type": "rep", "start": "1993-01-05", "end": "1995-01-03", "state": "WA", "district": 1, "party": "Democrat"},
		{"type": "sen", "start": "2019-01-03", "end": "2025-01-03", "state": "WA", "class": 1,
		 "state_rank": "junior", "party": "Democrat", "phone": "202-224-3441",
		 "url": "https://www.cantwell.senate.gov", "contact_form": "https://www.cantwell.senate.gov/contact"}
	]
}`

func TestBuildMemberSenator(t *testing.T) {
	var raw rawLegislator
	require.NoError(t, json.Unmarshal([]byte(senatorJSON), &raw))

	member := buildMember(raw)
	require.NotNil(t, member)

	assert.Equal(t, "C000127", member.BioguideID)
	assert.Equal(t, "Maria Cantwell", member.FullName)
	assert.Equal(t, "Senate", member.Chamber)
	assert.Equal(t, "WA", member.State)
	assert.Equal(t, "Democrat", member.Party)
	assert.Equal(t, "F", member.Gender)

	// Senate seats carry rank and class, never a district.
	require.NotNil(t, member.StateRank)
	assert.Equal(t, "junior", *member.StateRank)
	require.NotNil(t, member.SenateClass)
	assert.Equal(t, 1, *member.SenateClass)
	assert.Nil(t, member.District)

	// Tenure fields come from the whole terms array, not the current one.
	assert.Equal(t, 2, member.TotalTerms)
	require.NotNil(t, member.FirstTermStart)
	assert.Equal(t, "1993-01-05", member.FirstTermStart.Format("2006-01-02"))
	require.NotNil(t, member.TermStart)
	assert.Equal(t, "2019-01-03", member.TermStart.Format("2006-01-02"))

	assert.Equal(t, 300018, member.ExternalIDs.GovTrack)
	assert.Equal(t, "N00007836", member.ExternalIDs.OpenSecrets)

	require.NotNil(t, member.Birthday)
	assert.Equal(t, "1958-10-13", member.Birthday.Format("2006-01-02"))
}

func TestBuildMemberRepresentative(t *testing.T) {
	raw := rawLegislator{}
	raw.ID.Bioguide = "N000002"
	raw.Name.First = "Jerrold"
	raw.Name.Last = "Nadler"
	district := 12
	raw.Terms = []rawTerm{
		{Type: "rep", Start: "2023-01-03", End: "2025-01-03", State: "NY", District: &district, Party: "Democrat"},
	}

	member := buildMember(raw)
	require.NotNil(t, member)
	assert.Equal(t, "House", member.Chamber)
	require.NotNil(t, member.District)
	assert.Equal(t, 12, *member.District)
	assert.Nil(t, member.StateRank)
	assert.Nil(t, member.SenateClass)
	assert.Equal(t, "Jerrold Nadler", member.FullName, "assembled from parts when official_full is missing")
}

func TestBuildMemberSkipsNonCongressionalRecords(t *testing.T) {
	var noTerms rawLegislator
	assert.Nil(t, buildMember(noTerms))

	formerMember := rawLegislator{Terms: []rawTerm{{Type: "gov", State: "VA"}}}
	assert.Nil(t, buildMember(formerMember))
}

func TestFullNameOf(t *testing.T) {
	assert.Equal(t, "A. Donald McEachin", fullNameOf("A. Donald McEachin", "Aston", "Donald", "McEachin"))
	assert.Equal(t, "Aston Donald McEachin", fullNameOf("", "Aston", "Donald", "McEachin"))
	assert.Equal(t, "Aston McEachin", fullNameOf("", "Aston", "", "McEachin"), "empty middle leaves a single space, not two")
}
