package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Official portraits live in the unitedstates/images repo at a fixed size.
const portraitBaseURL = "https://raw.githubusercontent.com/unitedstates/images/gh-pages/congress/450x550"

// PhotoService downloads official member portraits and optionally pushes
// them to Cloudinary so the frontend serves them from the CDN instead of
// raw.githubusercontent.com.
type PhotoService struct {
	cld    *cloudinary.Cloudinary
	client *http.Client
}

// NewPhotoService builds a download-only service; pass credentials through
// WithCloudinary to enable uploads.
func NewPhotoService() *PhotoService {
	return &PhotoService{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithCloudinary wires up the upload target from account credentials.
func (s *PhotoService) WithCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("failed to init cloudinary: %w", err)
	}
	s.cld = cld
	return nil
}

// DownloadPortrait fetches the official 450x550 portrait for a member.
// Members without one get (nil, nil) so callers can skip quietly.
func (s *PhotoService) DownloadPortrait(ctx context.Context, bioguideID string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s.jpg", portraitBaseURL, bioguideID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "congress-directory/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

// UploadPortrait pushes portrait bytes to Cloudinary under a stable public
// id and returns the delivered URL. Overwrite is on: rerunning the photo
// import refreshes stale portraits in place.
func (s *PhotoService) UploadPortrait(ctx context.Context, bioguideID string, data io.Reader) (string, error) {
	if s.cld == nil {
		return "", fmt.Errorf("cloudinary not configured")
	}

	// Use pointer booleans as required by the cloudinary SDK
	unique := false
	overwrite := true
	uploadParams := uploader.UploadParams{
		Folder:         "congress/portraits",
		PublicID:       bioguideID,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}

	result, err := s.cld.Upload.Upload(ctx, data, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload portrait: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}
