package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ExternalIDs carries the cross-reference identifiers from the
// unitedstates legislators dataset. Importers write them; the ideology
// importer reads GovTrack back out to match the sponsorship analysis rows.
type ExternalIDs struct {
	Thomas      string `json:"thomas,omitempty"`
	GovTrack    int    `json:"govtrack,omitempty"`
	OpenSecrets string `json:"opensecrets,omitempty"`
	VoteSmart   int    `json:"votesmart,omitempty"`
	Wikipedia   string `json:"wikipedia,omitempty"`
	Ballotpedia string `json:"ballotpedia,omitempty"`
	Twitter     string `json:"twitter,omitempty"`
	YouTube     string `json:"youtube,omitempty"`
	Facebook    string `json:"facebook,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Main Member Model (GORM)
// ═══════════════════════════════════════════════════════════

// Member is one row of the directory: a sitting senator, representative,
// or governor. Bioguide IDs key the congressional rows; governors carry
// synthetic GOV-{state} ids and never enter the directory snapshot.
type Member struct {
	BioguideID string  `json:"bioguide_id" gorm:"type:varchar(20);primaryKey"`
	FirstName  string  `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName   string  `json:"last_name" gorm:"type:varchar(100);not null;index"`
	FullName   string  `json:"full_name" gorm:"type:varchar(200);not null"`
	Nickname   *string `json:"nickname,omitempty" gorm:"type:varchar(100)"`
	Party      string  `json:"party" gorm:"type:varchar(50);index"`
	Caucus     *string `json:"caucus,omitempty" gorm:"type:varchar(50)"`
	State      string  `json:"state" gorm:"type:varchar(2);index"`
	Chamber    string  `json:"chamber" gorm:"type:varchar(20);index"` // Senate | House | Governor
	Gender     string  `json:"gender" gorm:"type:varchar(1)"`         // M | F

	// Seat details. District is House-only; rank and class are Senate-only.
	District    *int    `json:"district,omitempty"`
	StateRank   *string `json:"state_rank,omitempty" gorm:"type:varchar(20)"` // junior | senior
	SenateClass *int    `json:"senate_class,omitempty"`

	// Term dates. FirstTermStart is the start of the earliest term on
	// record and is the basis for time-in-office bucketing.
	TermStart      *time.Time `json:"term_start,omitempty" gorm:"type:date"`
	TermEnd        *time.Time `json:"term_end,omitempty" gorm:"type:date"`
	FirstTermStart *time.Time `json:"first_term_start,omitempty" gorm:"type:date"`
	TotalTerms     int        `json:"total_terms" gorm:"default:0"`

	Birthday *time.Time `json:"birthday,omitempty" gorm:"type:date"`

	// Contact
	Phone       *string `json:"phone,omitempty" gorm:"type:varchar(50)"`
	Office      *string `json:"office,omitempty" gorm:"type:varchar(200)"`
	Website     *string `json:"website,omitempty" gorm:"type:text"`
	ContactForm *string `json:"contact_form,omitempty" gorm:"type:text"`

	PhotoURL    *string     `json:"photo_url,omitempty" gorm:"type:text"`
	ExternalIDs ExternalIDs `json:"external_ids" gorm:"type:jsonb;not null;default:'{}'"`

	// Legislation stats from congress.gov. Zero until the legislation
	// importer has visited the member; LegislationUpdatedAt marks the visit.
	SponsoredCount       int        `json:"sponsored_count" gorm:"default:0"`
	CosponsoredCount     int        `json:"cosponsored_count" gorm:"default:0"`
	EnactedCount         int        `json:"enacted_count" gorm:"default:0;index"`
	LegislationUpdatedAt *time.Time `json:"legislation_updated_at,omitempty"`

	// GovTrack sponsorship analysis. Nullable: not every member is scored.
	IdeologyScore   *float64 `json:"ideology_score,omitempty"`
	LeadershipScore *float64 `json:"leadership_score,omitempty"`

	// News mentions from GNews. Headlines is a pass-through blob of the
	// top stories, served as-is.
	NewsMentions        int            `json:"news_mentions" gorm:"default:0"`
	NewsSampleHeadlines datatypes.JSON `json:"news_sample_headlines,omitempty" gorm:"type:jsonb"`
	NewsUpdatedAt       *time.Time     `json:"news_updated_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Member) TableName() string {
	return "legislators"
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StatsResponse summarizes the directory for the landing page.
type StatsResponse struct {
	Total     int            `json:"total"`
	ByChamber map[string]int `json:"by_chamber"`
	ByParty   map[string]int `json:"by_party"`
	ByGender  map[string]int `json:"by_gender"`
	ByState   map[string]int `json:"by_state"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (e *ExternalIDs) Scan(value interface{}) error {
	if value == nil {
		*e = ExternalIDs{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ExternalIDs")
	}
	return json.Unmarshal(bytes, e)
}

func (e ExternalIDs) Value() (driver.Value, error) {
	return json.Marshal(e)
}
