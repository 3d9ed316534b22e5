package models

// Bill is one item of a congress.gov sponsored/cosponsored legislation
// page. Fields mirror the upstream JSON; anything congress.gov omits
// for amendments (policy area, number) stays empty.
type Bill struct {
	Congress       int        `json:"congress,omitempty"`
	Number         string     `json:"number,omitempty"`
	Type           string     `json:"type,omitempty"`
	Title          string     `json:"title,omitempty"`
	IntroducedDate string     `json:"introducedDate,omitempty"`
	URL            string     `json:"url,omitempty"`
	LatestAction   *BillAction `json:"latestAction,omitempty"`
	PolicyArea     *PolicyArea `json:"policyArea,omitempty"`
}

type BillAction struct {
	ActionDate string `json:"actionDate,omitempty"`
	Text       string `json:"text,omitempty"`
}

type PolicyArea struct {
	Name string `json:"name,omitempty"`
}

// BillPagination is congress.gov's pagination block, passed through.
type BillPagination struct {
	Count int    `json:"count"`
	Next  string `json:"next,omitempty"`
}

// LegislationResponse is one page of sponsored or cosponsored bills.
type LegislationResponse struct {
	BioguideID string         `json:"bioguide_id"`
	Pagination BillPagination `json:"pagination"`
	Bills      []Bill         `json:"bills"`
}

// LegislationSummaryResponse is the quick profile-page overview:
// totals plus the five most recent sponsored bills. Best effort: an
// unreachable upstream leaves zeros rather than failing the request.
type LegislationSummaryResponse struct {
	BioguideID       string `json:"bioguide_id"`
	SponsoredCount   int    `json:"sponsored_count"`
	CosponsoredCount int    `json:"cosponsored_count"`
	RecentSponsored  []Bill `json:"recent_sponsored"`
}
