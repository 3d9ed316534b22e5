package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

const congressAPIBase = "https://api.congress.gov/v3"

// CongressService proxies the congress.gov v3 API for per-member
// legislation. Responses are memoized in Redis so the free-tier key
// survives a busy profile page.
type CongressService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCongressService() *CongressService {
	baseURL := os.Getenv("CONGRESS_API_BASE")
	if baseURL == "" {
		baseURL = congressAPIBase
	}
	return &CongressService{
		baseURL: baseURL,
		apiKey:  os.Getenv("CONGRESS_API_KEY"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// congressPage is the raw congress.gov response shape. Sponsored and
// cosponsored pages differ only in the array key.
type congressPage struct {
	Pagination  models.BillPagination `json:"pagination"`
	Sponsored   []models.Bill         `json:"sponsoredLegislation"`
	Cosponsored []models.Bill         `json:"cosponsoredLegislation"`
}

func (s *CongressService) memberURL(bioguideID, endpoint string, limit, offset int) string {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	return fmt.Sprintf("%s/member/%s/%s?%s", s.baseURL, url.PathEscape(bioguideID), endpoint, params.Encode())
}

func (s *CongressService) fetchPage(ctx context.Context, bioguideID, endpoint string, limit, offset int) (*congressPage, error) {
	var page congressPage
	if err := getJSON(ctx, s.client, s.memberURL(bioguideID, endpoint, limit, offset), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SponsoredLegislation returns one page of bills the member sponsored.
// congress.gov answers 404 for members with no record; that becomes an
// empty page here, matching how the profile UI treats freshmen.
func (s *CongressService) SponsoredLegislation(ctx context.Context, bioguideID string, limit, offset int) (*models.LegislationResponse, *models.CacheInfo, error) {
	key := fmt.Sprintf("legislation:sponsored:%s:%d:%d", bioguideID, limit, offset)
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.LegislationResponse, error) {
		page, err := s.fetchPage(ctx, bioguideID, "sponsored-legislation", limit, offset)
		if err != nil {
			if IsUpstreamNotFound(err) {
				return emptyLegislation(bioguideID), nil
			}
			return nil, err
		}
		return &models.LegislationResponse{
			BioguideID: bioguideID,
			Pagination: page.Pagination,
			Bills:      page.Sponsored,
		}, nil
	})
}

// CosponsoredLegislation returns one page of bills the member cosponsored.
func (s *CongressService) CosponsoredLegislation(ctx context.Context, bioguideID string, limit, offset int) (*models.LegislationResponse, *models.CacheInfo, error) {
	key := fmt.Sprintf("legislation:cosponsored:%s:%d:%d", bioguideID, limit, offset)
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.LegislationResponse, error) {
		page, err := s.fetchPage(ctx, bioguideID, "cosponsored-legislation", limit, offset)
		if err != nil {
			if IsUpstreamNotFound(err) {
				return emptyLegislation(bioguideID), nil
			}
			return nil, err
		}
		return &models.LegislationResponse{
			BioguideID: bioguideID,
			Pagination: page.Pagination,
			Bills:      page.Cosponsored,
		}, nil
	})
}

// LegislationSummary fetches the sponsored and cosponsored totals
// concurrently plus the five most recent sponsored bills. Each leg is best
// effort: a failed fetch leaves its numbers at zero instead of failing the
// whole summary.
func (s *CongressService) LegislationSummary(ctx context.Context, bioguideID string) (*models.LegislationSummaryResponse, *models.CacheInfo, error) {
	key := "legislation:summary:" + bioguideID
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.LegislationSummaryResponse, error) {
		summary := &models.LegislationSummaryResponse{
			BioguideID:      bioguideID,
			RecentSponsored: []models.Bill{},
		}

		var g errgroup.Group
		g.Go(func() error {
			page, err := s.fetchPage(ctx, bioguideID, "sponsored-legislation", 5, 0)
			if err != nil {
				return nil
			}
			summary.SponsoredCount = page.Pagination.Count
			if len(page.Sponsored) > 5 {
				page.Sponsored = page.Sponsored[:5]
			}
			summary.RecentSponsored = page.Sponsored
			return nil
		})
		g.Go(func() error {
			page, err := s.fetchPage(ctx, bioguideID, "cosponsored-legislation", 1, 0)
			if err != nil {
				return nil
			}
			summary.CosponsoredCount = page.Pagination.Count
			return nil
		})
		_ = g.Wait()

		return summary, nil
	})
}

// SponsoredPage fetches one raw sponsored-legislation page, skipping the
// Redis memo. The legislation importer walks whole collections in pages
// of 250 and wants live data, not yesterday's cache.
func (s *CongressService) SponsoredPage(ctx context.Context, bioguideID string, limit, offset int) (int, []models.Bill, error) {
	page, err := s.fetchPage(ctx, bioguideID, "sponsored-legislation", limit, offset)
	if err != nil {
		return 0, nil, err
	}
	return page.Pagination.Count, page.Sponsored, nil
}

// CosponsoredTotal fetches just the cosponsored count (a limit-1 page).
func (s *CongressService) CosponsoredTotal(ctx context.Context, bioguideID string) (int, error) {
	page, err := s.fetchPage(ctx, bioguideID, "cosponsored-legislation", 1, 0)
	if err != nil {
		return 0, err
	}
	return page.Pagination.Count, nil
}

func emptyLegislation(bioguideID string) *models.LegislationResponse {
	return &models.LegislationResponse{
		BioguideID: bioguideID,
		Pagination: models.BillPagination{Count: 0},
		Bills:      []models.Bill{},
	}
}
