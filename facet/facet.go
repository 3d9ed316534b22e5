// Package facet implements the directory's filter, sort, and count
// engine: a composite facet predicate over an in-memory member
// snapshot, per-facet candidate counts under partial selections, a
// selectable comparator table, and the query-string codec the UI
// mirrors its state into.
//
// The engine is pure: no I/O, no locking, no hidden clock. Callers
// pass the snapshot, the selection, the favorites set, and the
// evaluation instant; every call recomputes from scratch. At directory
// scale (a few hundred members) a full O(members x facets) pass per
// request is cheaper than any incremental structure would be to keep
// correct.
package facet

// Key identifies one filterable dimension. The set is fixed: behavior
// is table-driven off these constants and the codec drops tokens for
// anything else, so an unknown key cannot enter the engine.
type Key string

const (
	KeyChamber Key = "chamber"
	KeyState   Key = "state"
	KeyParty   Key = "party"
	KeyGender  Key = "gender"
	KeyYears   Key = "years"   // bucketed years in congress
	KeyEnacted Key = "enacted" // bucketed enacted-bill count
)

// Keys lists every facet in sidebar display order.
var Keys = []Key{KeyChamber, KeyState, KeyParty, KeyGender, KeyYears, KeyEnacted}

// Value is one selectable token of a facet plus its display label.
type Value struct {
	Token string
	Label string
}

// Definition describes one facet for the filter sidebar.
type Definition struct {
	Key    Key
	Label  string
	Values []Value
}

// Options configures how members with missing temporal fields take
// part in the engine. Both default to the permissive legacy behavior:
// a missing birthday sorts as the epoch (maximally old) and a missing
// first term counts as zero years (lowest bucket). Strict mode drops
// such members from the age sort and the years facet instead.
type Options struct {
	ExcludeMissingBirthday  bool
	ExcludeMissingFirstTerm bool
}

var chamberValues = []Value{
	{"Senate", "Senate"},
	{"House", "House"},
}

var partyValues = []Value{
	{"Democrat", "Democrat"},
	{"Republican", "Republican"},
	{"Independent", "Independent"},
}

var genderValues = []Value{
	{"M", "Male"},
	{"F", "Female"},
}

// stateValues covers the 50 states, DC, and the territories with
// congressional delegations.
var stateValues = []Value{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AS", "American Samoa"},
	{"AZ", "Arizona"}, {"AR", "Arkansas"}, {"CA", "California"},
	{"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"},
	{"GU", "Guam"}, {"HI", "Hawaii"}, {"ID", "Idaho"},
	{"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"},
	{"ME", "Maine"}, {"MD", "Maryland"}, {"MA", "Massachusetts"},
	{"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"},
	{"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"},
	{"NM", "New Mexico"}, {"NY", "New York"}, {"NC", "North Carolina"},
	{"ND", "North Dakota"}, {"MP", "Northern Mariana Islands"},
	{"OH", "Ohio"}, {"OK", "Oklahoma"}, {"OR", "Oregon"},
	{"PA", "Pennsylvania"}, {"PR", "Puerto Rico"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"},
	{"TX", "Texas"}, {"UT", "Utah"}, {"VT", "Vermont"},
	{"VI", "Virgin Islands"}, {"VA", "Virginia"}, {"WA", "Washington"},
	{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

var definitions = []Definition{
	{KeyChamber, "Chamber", chamberValues},
	{KeyState, "State", stateValues},
	{KeyParty, "Party", partyValues},
	{KeyGender, "Gender", genderValues},
	{KeyYears, "Years in Congress", yearsValues},
	{KeyEnacted, "Bills Enacted", enactedValues},
}

// validTokens indexes every facet's enumeration for codec validation.
var validTokens = func() map[Key]map[string]bool {
	m := make(map[Key]map[string]bool, len(definitions))
	for _, def := range definitions {
		tokens := make(map[string]bool, len(def.Values))
		for _, v := range def.Values {
			tokens[v.Token] = true
		}
		m[def.Key] = tokens
	}
	return m
}()

// Definitions returns every facet with its ordered value enumeration,
// in sidebar display order. Callers must treat the result as read-only.
func Definitions() []Definition {
	return definitions
}

// ValidToken reports whether token belongs to the facet's enumeration.
func ValidToken(key Key, token string) bool {
	return validTokens[key][token]
}
