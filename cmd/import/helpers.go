package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const unitedStatesBase = "https://unitedstates.github.io/congress-legislators"

var httpClient = &http.Client{Timeout: 60 * time.Second}

// fetchJSON downloads and decodes one of the public dataset files.
func fetchJSON(url string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "congress-directory/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func banner(title string) {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println(title)
	fmt.Println("════════════════════════════════════════════════════════════")
}

// parseDate reads the dataset's YYYY-MM-DD date strings, nil when blank.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
