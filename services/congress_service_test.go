package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCongressService points the client at a local stub of
// api.congress.gov.
func newTestCongressService(t *testing.T, handler http.HandlerFunc) *CongressService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("CONGRESS_API_BASE", server.URL)
	t.Setenv("CONGRESS_API_KEY", "test-key")
	return NewCongressService()
}

func TestSponsoredLegislationFetchesPage(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"api_key": r.URL.Query().Get("api_key"),
			"format":  r.URL.Query().Get("format"),
			"limit":   r.URL.Query().Get("limit"),
		}
		fmt.Fprint(w, `{
			"pagination": {"count": 42},
			"sponsoredLegislation": [
				{"congress": 118, "number": "1234", "type": "HR", "title": "A bill"}
			]
		}`)
	})

	resp, cache, err := svc.SponsoredLegislation(context.Background(), "S000033", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, "/member/S000033/sponsored-legislation", gotPath)
	assert.Equal(t, "test-key", gotQuery["api_key"])
	assert.Equal(t, "json", gotQuery["format"])
	assert.Equal(t, "20", gotQuery["limit"])

	assert.Equal(t, "S000033", resp.BioguideID)
	assert.Equal(t, 42, resp.Pagination.Count)
	require.Len(t, resp.Bills, 1)
	assert.Equal(t, "A bill", resp.Bills[0].Title)

	require.NotNil(t, cache)
	assert.False(t, cache.Hit, "no Redis in tests, so never a cache hit")
}

func TestSponsoredLegislationTreats404AsEmptyPage(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	resp, _, err := svc.SponsoredLegislation(context.Background(), "FRESH01", 20, 0)
	require.NoError(t, err, "a member with no record is an empty page, not an error")
	assert.Equal(t, 0, resp.Pagination.Count)
	assert.NotNil(t, resp.Bills)
	assert.Empty(t, resp.Bills)
}

func TestSponsoredLegislationForwardsServerErrors(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := svc.SponsoredLegislation(context.Background(), "S000033", 20, 0)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, UpstreamStatusCode(err))
}

func TestCosponsoredLegislationReadsCosponsoredArray(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/member/W000817/cosponsored-legislation", r.URL.Path)
		fmt.Fprint(w, `{
			"pagination": {"count": 2},
			"cosponsoredLegislation": [
				{"number": "10", "title": "First"},
				{"number": "11", "title": "Second"}
			]
		}`)
	})

	resp, _, err := svc.CosponsoredLegislation(context.Background(), "W000817", 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Bills, 2)
	assert.Equal(t, "Second", resp.Bills[1].Title)
}

func TestLegislationSummaryAggregatesBothFeeds(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/member/B001230/sponsored-legislation":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{
				"pagination": {"count": 12},
				"sponsoredLegislation": [
					{"number": "1"}, {"number": "2"}, {"number": "3"},
					{"number": "4"}, {"number": "5"}
				]
			}`)
		case "/member/B001230/cosponsored-legislation":
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			fmt.Fprint(w, `{"pagination": {"count": 99}, "cosponsoredLegislation": [{"number": "7"}]}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	summary, _, err := svc.LegislationSummary(context.Background(), "B001230")
	require.NoError(t, err)
	assert.Equal(t, 12, summary.SponsoredCount)
	assert.Equal(t, 99, summary.CosponsoredCount)
	assert.Len(t, summary.RecentSponsored, 5)
}

func TestLegislationSummaryToleratesPartialFailure(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/member/B001230/cosponsored-legislation" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"pagination": {"count": 3}, "sponsoredLegislation": [{"number": "1"}]}`)
	})

	summary, _, err := svc.LegislationSummary(context.Background(), "B001230")
	require.NoError(t, err, "one leg failing must not sink the summary")
	assert.Equal(t, 3, summary.SponsoredCount)
	assert.Equal(t, 0, summary.CosponsoredCount)
}

func TestSponsoredPageWalksOffsets(t *testing.T) {
	var gotOffsets []string
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		gotOffsets = append(gotOffsets, r.URL.Query().Get("offset"))
		fmt.Fprint(w, `{"pagination": {"count": 300}, "sponsoredLegislation": [{"number": "1"}]}`)
	})

	count, bills, err := svc.SponsoredPage(context.Background(), "P000197", 250, 0)
	require.NoError(t, err)
	assert.Equal(t, 300, count)
	assert.Len(t, bills, 1)

	_, _, err = svc.SponsoredPage(context.Background(), "P000197", 250, 250)
	require.NoError(t, err)

	// offset is omitted for the first page and explicit afterwards
	assert.Equal(t, []string{"", "250"}, gotOffsets)
}

func TestCosponsoredTotalUsesSingleItemPage(t *testing.T) {
	svc := newTestCongressService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"pagination": {"count": 512}, "cosponsoredLegislation": [{"number": "1"}]}`)
	})

	total, err := svc.CosponsoredTotal(context.Background(), "P000197")
	require.NoError(t, err)
	assert.Equal(t, 512, total)
}
