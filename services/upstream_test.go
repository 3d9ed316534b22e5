package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONDecodesSuccessfulResponse(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, `{"name":"Agriculture","count":3}`)
	}))
	defer server.Close()

	var out struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	err := getJSON(context.Background(), server.Client(), server.URL, &out)
	require.NoError(t, err)
	assert.Equal(t, "Agriculture", out.Name)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, "congress-directory/1.0", gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetJSONReportsUpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			var out map[string]interface{}
			err := getJSON(context.Background(), server.Client(), server.URL, &out)
			require.Error(t, err)
			assert.Equal(t, status, UpstreamStatusCode(err))
		})
	}
}

func TestGetJSONWrapsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	var out map[string]interface{}
	err := getJSON(context.Background(), http.DefaultClient, server.URL, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnreachable)
	assert.Equal(t, 0, UpstreamStatusCode(err))
}

func TestGetJSONRejectsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": not json`)
	}))
	defer server.Close()

	var out map[string]interface{}
	err := getJSON(context.Background(), server.Client(), server.URL, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestUpstreamStatusCodeUnwrapsNestedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetching page: %w", &UpstreamStatusError{StatusCode: http.StatusNotFound})
	assert.Equal(t, http.StatusNotFound, UpstreamStatusCode(wrapped))
	assert.True(t, IsUpstreamNotFound(wrapped))

	assert.Equal(t, 0, UpstreamStatusCode(errors.New("plain failure")))
	assert.False(t, IsUpstreamNotFound(nil))
}
