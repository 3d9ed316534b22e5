package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directory_cache "github.com/ethoz1970/congress-directory/cache"
	"github.com/ethoz1970/congress-directory/models"
)

func newTestZipLookupService(t *testing.T, handler http.HandlerFunc) *ZipLookupService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("ZIP_LOOKUP_API_BASE", server.URL)
	return NewZipLookupService()
}

func TestMatchSnapshotMember(t *testing.T) {
	snapshot := []models.Member{
		{BioguideID: "V000081", State: "NY", LastName: "Velazquez"},
		{BioguideID: "O000172", State: "NY", LastName: "Ocasio-Cortez"},
		{BioguideID: "C001120", State: "TX", LastName: "Crenshaw"},
	}

	tests := []struct {
		name        string
		displayName string
		state       string
		wantID      string
	}{
		{"plain last name", "Nydia Velazquez", "NY", "V000081"},
		{"case insensitive", "NYDIA VELAZQUEZ", "NY", "V000081"},
		{"hyphenated last name", "Alexandria Ocasio-Cortez", "NY", "O000172"},
		{"state must match", "Dan Crenshaw", "NY", ""},
		{"unknown name", "Jane Nobody", "NY", ""},
		{"empty name", "", "NY", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := matchSnapshotMember(snapshot, tt.displayName, tt.state)
			if tt.wantID == "" {
				assert.Nil(t, match)
				return
			}
			require.NotNil(t, match)
			assert.Equal(t, tt.wantID, match.BioguideID)
		})
	}
}

func TestLookupEnrichesFromSnapshot(t *testing.T) {
	photo := "https://cdn.example.com/V000081.jpg"
	directory_cache.SetSnapshot([]models.Member{
		{BioguideID: "V000081", State: "NY", LastName: "Velazquez", PhotoURL: &photo},
	})
	t.Cleanup(directory_cache.Invalidate)

	svc := newTestZipLookupService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "11201", r.URL.Query().Get("zip"))
		assert.Equal(t, "json", r.URL.Query().Get("output"))
		fmt.Fprint(w, `{"results": [
			{"name": "Nydia Velazquez", "party": "D", "state": "NY", "district": "7",
			 "phone": "202-225-2361", "link": "https://velazquez.house.gov"},
			{"name": "Charles Schumer", "party": "D", "state": "NY", "district": ""}
		]}`)
	})

	resp, _, err := svc.Lookup(context.Background(), "11201")
	require.NoError(t, err)
	assert.Equal(t, "11201", resp.Zip)
	require.Len(t, resp.Representatives, 2)

	matched := resp.Representatives[0]
	assert.Equal(t, "Nydia Velazquez", matched.Name)
	require.NotNil(t, matched.BioguideID)
	assert.Equal(t, "V000081", *matched.BioguideID)
	require.NotNil(t, matched.PhotoURL)
	assert.Equal(t, photo, *matched.PhotoURL)

	// Schumer is not in the snapshot; the upstream fields pass through bare.
	unmatched := resp.Representatives[1]
	assert.Equal(t, "Charles Schumer", unmatched.Name)
	assert.Nil(t, unmatched.BioguideID)
}

func TestLookupUnknownZipIsEmptyDelegation(t *testing.T) {
	svc := newTestZipLookupService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "no results"}`)
	})

	resp, _, err := svc.Lookup(context.Background(), "00000")
	require.NoError(t, err, "an unknown zip is an empty delegation, not a failure")
	assert.Equal(t, "00000", resp.Zip)
	assert.NotNil(t, resp.Representatives)
	assert.Empty(t, resp.Representatives)
}

func TestLookupForwardsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	t.Setenv("ZIP_LOOKUP_API_BASE", server.URL)

	_, _, err := NewZipLookupService().Lookup(context.Background(), "11201")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnreachable)
}
