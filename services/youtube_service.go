package services

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3/search"

// YouTubeService proxies the YouTube Data API for recent appearances of a
// member. Quota is the constraint here, not latency: one search costs 100
// units of the daily 10k, so cached responses do the heavy lifting.
type YouTubeService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewYouTubeService() *YouTubeService {
	baseURL := os.Getenv("YOUTUBE_API_BASE")
	if baseURL == "" {
		baseURL = youtubeAPIBase
	}
	return &YouTubeService{
		baseURL: baseURL,
		apiKey:  os.Getenv("YOUTUBE_API_KEY"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type youtubeSearchPage struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			PublishedAt  string `json:"publishedAt"`
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchMember returns up to six videos matching the member's full name.
func (s *YouTubeService) SearchMember(ctx context.Context, bioguideID, fullName string) (*models.VideosResponse, *models.CacheInfo, error) {
	key := "videos:" + bioguideID
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.VideosResponse, error) {
		params := url.Values{}
		params.Set("part", "snippet")
		params.Set("q", fullName)
		params.Set("type", "video")
		params.Set("maxResults", "6")
		params.Set("key", s.apiKey)

		var page youtubeSearchPage
		if err := getJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &page); err != nil {
			return nil, err
		}

		videos := make([]models.Video, 0, len(page.Items))
		for _, item := range page.Items {
			if item.ID.VideoID == "" {
				continue
			}
			videos = append(videos, models.Video{
				VideoID:      item.ID.VideoID,
				Title:        item.Snippet.Title,
				Description:  item.Snippet.Description,
				ChannelTitle: item.Snippet.ChannelTitle,
				PublishedAt:  item.Snippet.PublishedAt,
				Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
				URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			})
		}

		return &models.VideosResponse{
			BioguideID: bioguideID,
			Query:      fullName,
			Videos:     videos,
		}, nil
	})
}
