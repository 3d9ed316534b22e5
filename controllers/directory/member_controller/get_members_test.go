package member_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directory_cache "github.com/ethoz1970/congress-directory/cache"
	"github.com/ethoz1970/congress-directory/facet"
	"github.com/ethoz1970/congress-directory/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

// seedSnapshot warms the directory cache so handlers never reach for the
// database.
func seedSnapshot(t *testing.T) {
	t.Helper()
	directory_cache.SetSnapshot([]models.Member{
		{BioguideID: "A01", FirstName: "Ann", LastName: "Alder", FullName: "Ann Alder",
			State: "CA", Chamber: "Senate", Party: "Democrat", Gender: "F",
			EnactedCount: 12, FirstTermStart: date(2008, 1, 3), Birthday: date(1960, 5, 1)},
		{BioguideID: "B02", FirstName: "Ben", LastName: "Brook", FullName: "Ben Brook",
			State: "CA", Chamber: "House", Party: "Democrat", Gender: "M",
			EnactedCount: 0, FirstTermStart: date(2023, 1, 3), Birthday: date(1985, 7, 9)},
		{BioguideID: "C03", FirstName: "Cora", LastName: "Cole", FullName: "Cora Cole",
			State: "TX", Chamber: "Senate", Party: "Republican", Gender: "F",
			EnactedCount: 3, FirstTermStart: date(2015, 1, 3), Birthday: date(1972, 2, 14)},
		{BioguideID: "D04", FirstName: "Dev", LastName: "Dale", FullName: "Dev Dale",
			State: "TX", Chamber: "House", Party: "Republican", Gender: "M",
			EnactedCount: 1, FirstTermStart: date(2019, 1, 3), Birthday: date(1979, 11, 30)},
	})
	t.Cleanup(directory_cache.Invalidate)
}

func directoryRouter() *gin.Engine {
	router := gin.New()
	router.GET("/legislators", GetMembers)
	router.GET("/legislators/:bioguideID", GetMemberByID)
	router.GET("/senators", GetSenators)
	return router
}

func getResult(t *testing.T, router *gin.Engine, target string) facet.Result {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Message string       `json:"message"`
		Data    facet.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func memberIDs(members []models.Member) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.BioguideID)
	}
	return ids
}

func TestGetMembersUnfiltered(t *testing.T) {
	seedSnapshot(t)
	router := directoryRouter()

	result := getResult(t, router, "/legislators")
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 4, result.Filtered)
	assert.Equal(t, 1.0, result.Ratio)
	assert.Len(t, result.Members, 4)

	// Facet counts cover the full snapshot when nothing is selected.
	assert.Equal(t, 2, result.Counts[facet.KeyChamber]["Senate"])
	assert.Equal(t, 2, result.Counts[facet.KeyChamber]["House"])
	assert.Equal(t, 2, result.Counts[facet.KeyParty]["Democrat"])
	assert.Equal(t, 2, result.Counts[facet.KeyState]["CA"])
}

func TestGetMembersFiltersCombine(t *testing.T) {
	seedSnapshot(t)
	router := directoryRouter()

	result := getResult(t, router, "/legislators?chamber=Senate&party=Republican")
	assert.Equal(t, []string{"C03"}, memberIDs(result.Members))
	assert.Equal(t, 1, result.Filtered)
	assert.Equal(t, 4, result.Total)

	// Sibling counts stay live: the chamber facet is counted without the
	// chamber selection applied, so House still shows its Republicans.
	assert.Equal(t, 1, result.Counts[facet.KeyChamber]["House"])
}

func TestGetMembersSortsByEnacted(t *testing.T) {
	seedSnapshot(t)
	router := directoryRouter()

	result := getResult(t, router, "/legislators?sort=enacted&direction=desc")
	assert.Equal(t, []string{"A01", "C03", "D04", "B02"}, memberIDs(result.Members))
}

func TestGetSenatorsPinsChamber(t *testing.T) {
	seedSnapshot(t)
	router := directoryRouter()

	result := getResult(t, router, "/senators?party=Democrat")
	assert.Equal(t, []string{"A01"}, memberIDs(result.Members))
}

func TestGetMemberByIDServesFromSnapshot(t *testing.T) {
	seedSnapshot(t)
	router := directoryRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/legislators/C03", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data models.Member `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Cora Cole", envelope.Data.FullName)
	assert.Equal(t, "TX", envelope.Data.State)
}

func TestStatsLabelHelpers(t *testing.T) {
	assert.Equal(t, "Unknown", orUnknown(""))
	assert.Equal(t, "Democrat", orUnknown("Democrat"))

	assert.Equal(t, "Male", genderLabel("M"))
	assert.Equal(t, "Female", genderLabel("F"))
	assert.Equal(t, "Unknown", genderLabel(""))
	assert.Equal(t, "Unknown", genderLabel("X"))
}
