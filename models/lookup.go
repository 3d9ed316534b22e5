package models

// ZipRepresentative is one whoismyrepresentative.com result, enriched
// with the matching directory record when one exists.
type ZipRepresentative struct {
	Name       string  `json:"name"`
	Party      string  `json:"party"`
	State      string  `json:"state"`
	District   string  `json:"district,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Office     string  `json:"office,omitempty"`
	Link       string  `json:"link,omitempty"`
	BioguideID *string `json:"bioguide_id,omitempty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
}

type ZipLookupResponse struct {
	Zip             string              `json:"zip"`
	Representatives []ZipRepresentative `json:"representatives"`
}
