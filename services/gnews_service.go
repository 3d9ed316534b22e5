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

const gnewsAPIBase = "https://gnews.io/api/v4/search"

// GNewsService proxies gnews.io for recent coverage of a member. The free
// tier allows 100 requests a day, so every response is cached.
type GNewsService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGNewsService() *GNewsService {
	baseURL := os.Getenv("GNEWS_API_BASE")
	if baseURL == "" {
		baseURL = gnewsAPIBase
	}
	return &GNewsService{
		baseURL: baseURL,
		apiKey:  os.Getenv("GNEWS_API_KEY"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type gnewsPage struct {
	TotalArticles int                  `json:"totalArticles"`
	Articles      []models.NewsArticle `json:"articles"`
}

// Search runs an exact-phrase search for the name over the last N days,
// US English sources, 10 articles max. Uncached: the mention importer
// calls this directly to get fresh counts.
func (s *GNewsService) Search(ctx context.Context, fullName string, days int) (int, []models.NewsArticle, error) {
	query := `"` + fullName + `"`
	from := time.Now().AddDate(0, 0, -days).Format("2006-01-02T00:00:00Z")

	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("country", "us")
	params.Set("from", from)
	params.Set("max", "10")
	params.Set("apikey", s.apiKey)

	var page gnewsPage
	if err := getJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &page); err != nil {
		return 0, nil, err
	}
	if page.Articles == nil {
		page.Articles = []models.NewsArticle{}
	}
	return page.TotalArticles, page.Articles, nil
}

// SearchMember looks up coverage mentioning the member's full name as an
// exact phrase over the last 30 days.
func (s *GNewsService) SearchMember(ctx context.Context, bioguideID, fullName string) (*models.NewsResponse, *models.CacheInfo, error) {
	key := "news:" + bioguideID
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.NewsResponse, error) {
		total, articles, err := s.Search(ctx, fullName, 30)
		if err != nil {
			return nil, err
		}
		return &models.NewsResponse{
			BioguideID:    bioguideID,
			Query:         `"` + fullName + `"`,
			TotalArticles: total,
			Articles:      articles,
		}, nil
	})
}
