package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUpstreamUnreachable marks network-level failures talking to a third-party
// API, as opposed to the API answering with an error status.
var ErrUpstreamUnreachable = errors.New("upstream unreachable")

// UpstreamStatusError carries a non-200 status from a proxied API so handlers
// can forward it instead of collapsing everything into a 500.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// getJSON fetches rawURL and decodes the body into out. A transport failure
// wraps ErrUpstreamUnreachable; a non-200 response becomes an
// UpstreamStatusError.
func getJSON(ctx context.Context, client *http.Client, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "congress-directory/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// UpstreamStatusCode returns the embedded status code when err is an
// UpstreamStatusError, and 0 otherwise.
func UpstreamStatusCode(err error) int {
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// IsUpstreamNotFound reports whether err is the upstream answering 404 for
// the requested resource.
func IsUpstreamNotFound(err error) bool {
	return UpstreamStatusCode(err) == http.StatusNotFound
}
