package services

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

const zipLookupAPIBase = "https://whoismyrepresentative.com/getall_mems.php"

// ZipLookupService resolves a zip code to its congressional delegation via
// whoismyrepresentative.com, then enriches each hit with the matching
// directory record so the UI can link straight to a profile.
type ZipLookupService struct {
	baseURL string
	client  *http.Client
}

func NewZipLookupService() *ZipLookupService {
	baseURL := os.Getenv("ZIP_LOOKUP_API_BASE")
	if baseURL == "" {
		baseURL = zipLookupAPIBase
	}
	return &ZipLookupService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type zipLookupPage struct {
	Results []struct {
		Name     string `json:"name"`
		Party    string `json:"party"`
		State    string `json:"state"`
		District string `json:"district"`
		Phone    string `json:"phone"`
		Office   string `json:"office"`
		Link     string `json:"link"`
	} `json:"results"`
}

// Lookup returns the representatives for a zip code. Upstream matches are
// joined to the snapshot by case-insensitive last name within the same
// state; unmatched names pass through without enrichment.
func (s *ZipLookupService) Lookup(ctx context.Context, zip string) (*models.ZipLookupResponse, *models.CacheInfo, error) {
	key := "ziplookup:" + zip
	return fetchCached(ctx, key, config.ProxyCacheTTL(), func(ctx context.Context) (*models.ZipLookupResponse, error) {
		params := url.Values{}
		params.Set("zip", zip)
		params.Set("output", "json")

		var page zipLookupPage
		if err := getJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &page); err != nil {
			// The API answers 404 with an error body for zips it does not
			// know. Treat that as an empty delegation, not a failure.
			if IsUpstreamNotFound(err) {
				return &models.ZipLookupResponse{Zip: zip, Representatives: []models.ZipRepresentative{}}, nil
			}
			return nil, err
		}

		snapshot, err := LoadSnapshot(ctx)
		if err != nil {
			// Enrichment is optional; the upstream answer alone is useful.
			snapshot = nil
		}

		reps := make([]models.ZipRepresentative, 0, len(page.Results))
		for _, result := range page.Results {
			rep := models.ZipRepresentative{
				Name:     result.Name,
				Party:    result.Party,
				State:    result.State,
				District: result.District,
				Phone:    result.Phone,
				Office:   result.Office,
				Link:     result.Link,
			}
			if match := matchSnapshotMember(snapshot, result.Name, result.State); match != nil {
				rep.BioguideID = &match.BioguideID
				rep.PhotoURL = match.PhotoURL
			}
			reps = append(reps, rep)
		}

		return &models.ZipLookupResponse{Zip: zip, Representatives: reps}, nil
	})
}

// matchSnapshotMember finds the snapshot member whose last name ends the
// upstream display name ("Alexandria Ocasio-Cortez") within the same state.
func matchSnapshotMember(snapshot []models.Member, displayName, state string) *models.Member {
	name := strings.ToLower(strings.TrimSpace(displayName))
	if name == "" {
		return nil
	}
	for i := range snapshot {
		m := &snapshot[i]
		if !strings.EqualFold(m.State, state) {
			continue
		}
		if strings.HasSuffix(name, strings.ToLower(m.LastName)) {
			return m
		}
	}
	return nil
}
