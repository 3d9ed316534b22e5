package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethoz1970/congress-directory/models"
)

func rssDocument(itemCount int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Committee on Agriculture</title>`)
	for i := 0; i < itemCount; i++ {
		fmt.Fprintf(&b, `<item><title>Hearing %d</title><link>https://agriculture.house.gov/news/%d</link><pubDate>Wed, 20 Aug 2025 14:00:00 GMT</pubDate><description>Full committee hearing %d</description></item>`, i, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestCommitteeFeedParsesRSS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssDocument(2))
	}))
	t.Cleanup(server.Close)

	committee := &models.Committee{ThomasID: "HSAG", RSSURL: server.URL}
	resp, cache, err := NewFeedService().CommitteeFeed(context.Background(), committee)
	require.NoError(t, err)

	assert.Equal(t, "HSAG", resp.CommitteeID)
	assert.Equal(t, server.URL, resp.FeedURL)
	require.Len(t, resp.Items, 2)

	first := resp.Items[0]
	assert.Equal(t, "Hearing 0", first.Title)
	assert.Equal(t, "https://agriculture.house.gov/news/0", first.Link)
	assert.Equal(t, "Full committee hearing 0", first.Summary)
	require.NotNil(t, first.Published)
	assert.Equal(t, 2025, first.Published.Year())

	require.NotNil(t, cache)
	assert.False(t, cache.Hit)
}

func TestCommitteeFeedCapsItemCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDocument(35))
	}))
	t.Cleanup(server.Close)

	committee := &models.Committee{ThomasID: "SSAF", RSSURL: server.URL}
	resp, _, err := NewFeedService().CommitteeFeed(context.Background(), committee)
	require.NoError(t, err)
	assert.Len(t, resp.Items, maxFeedItems)
}

func TestCommitteeFeedUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	committee := &models.Committee{ThomasID: "HSAG", RSSURL: server.URL}
	_, _, err := NewFeedService().CommitteeFeed(context.Background(), committee)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnreachable)
}
