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

func TestSearchMemberVideosMapsItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "snippet", q.Get("part"))
		assert.Equal(t, "Ada Vance", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "6", q.Get("maxResults"))
		assert.Equal(t, "yt-test-key", q.Get("key"))
		fmt.Fprint(w, `{"items": [
			{"id": {"videoId": "abc123"},
			 "snippet": {"publishedAt": "2025-08-19T12:00:00Z", "title": "Floor speech",
			             "channelTitle": "C-SPAN",
			             "thumbnails": {"medium": {"url": "https://i.ytimg.com/vi/abc123/m.jpg"}}}},
			{"id": {}, "snippet": {"title": "Channel result, no video id"}}
		]}`)
	}))
	t.Cleanup(server.Close)
	t.Setenv("YOUTUBE_API_BASE", server.URL)
	t.Setenv("YOUTUBE_API_KEY", "yt-test-key")

	resp, _, err := NewYouTubeService().SearchMember(context.Background(), "V000001", "Ada Vance")
	require.NoError(t, err)

	assert.Equal(t, "V000001", resp.BioguideID)
	assert.Equal(t, "Ada Vance", resp.Query)
	require.Len(t, resp.Videos, 1, "items without a videoId are dropped")

	video := resp.Videos[0]
	assert.Equal(t, "abc123", video.VideoID)
	assert.Equal(t, "Floor speech", video.Title)
	assert.Equal(t, "C-SPAN", video.ChannelTitle)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/m.jpg", video.Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", video.URL)
}
