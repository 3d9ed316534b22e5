package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed := parseDate("1958-10-13")
	require.NotNil(t, parsed)
	assert.Equal(t, 1958, parsed.Year())
	assert.Equal(t, "October", parsed.Month().String())
	assert.Equal(t, 13, parsed.Day())

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("10/13/1958"), "only the dataset's YYYY-MM-DD layout is accepted")
	assert.Nil(t, parseDate("not a date"))
}

func TestStrPtr(t *testing.T) {
	assert.Nil(t, strPtr(""))
	p := strPtr("value")
	require.NotNil(t, p)
	assert.Equal(t, "value", *p)
}

func TestFetchJSONDecodesDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "congress-directory/1.0", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `[{"id":{"bioguide":"A000001"}}]`)
	}))
	defer server.Close()

	var out []rawLegislator
	require.NoError(t, fetchJSON(server.URL, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "A000001", out[0].ID.Bioguide)
}

func TestFetchJSONRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	var out []rawLegislator
	err := fetchJSON(server.URL, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}
