package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// Committee is a standing committee from the unitedstates dataset,
// keyed by thomas id (e.g. HSAG, SSJU). Subcommittees ride along as a
// pass-through blob: the API serves them verbatim.
type Committee struct {
	ThomasID      string         `json:"thomas_id" gorm:"type:varchar(10);primaryKey"`
	Name          string         `json:"name" gorm:"type:varchar(200);not null;index"`
	Type          string         `json:"type" gorm:"type:varchar(10);index"` // house | senate | joint
	URL           string         `json:"url" gorm:"type:text"`
	Jurisdiction  string         `json:"jurisdiction" gorm:"type:text"`
	RSSURL        string         `json:"rss_url" gorm:"type:text"`
	MinorityURL   string         `json:"minority_url" gorm:"type:text"`
	Subcommittees datatypes.JSON `json:"subcommittees" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Committee) TableName() string {
	return "committees"
}

// CommitteeAssignment is one seat a member holds, denormalized with the
// committee (and parent) names so the client never joins.
type CommitteeAssignment struct {
	CommitteeID         string  `json:"committee_id"`
	CommitteeName       string  `json:"committee_name"`
	IsSubcommittee      bool    `json:"is_subcommittee"`
	ParentCommitteeID   *string `json:"parent_committee_id"`
	ParentCommitteeName *string `json:"parent_committee_name"`
	Rank                *int    `json:"rank"`
	Title               *string `json:"title"` // Chair, Ranking Member, ...
	Party               *string `json:"party"` // majority | minority
}

type AssignmentList []CommitteeAssignment

// CommitteeMembership holds every assignment of one member, stored in
// display order: main committees first, titled seats first, then rank.
type CommitteeMembership struct {
	BioguideID string         `json:"bioguide_id" gorm:"type:varchar(20);primaryKey"`
	Committees AssignmentList `json:"committees" gorm:"type:jsonb;not null;default:'[]'"`
	UpdatedAt  time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CommitteeMembership) TableName() string {
	return "committee_memberships"
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// MemberCommitteesResponse splits a member's assignments the way the
// profile page renders them.
type MemberCommitteesResponse struct {
	BioguideID    string                `json:"bioguide_id"`
	Committees    []CommitteeAssignment `json:"committees"`
	Subcommittees []CommitteeAssignment `json:"subcommittees"`
}

// CommitteeMemberEntry is one roster row for a committee, hydrated with
// the member record.
type CommitteeMemberEntry struct {
	BioguideID string  `json:"bioguide_id"`
	Legislator Member  `json:"legislator"`
	Rank       *int    `json:"rank"`
	Title      *string `json:"title"`
	Party      *string `json:"party"`
}

// CommitteeFeedItem is one entry of a committee's RSS activity feed.
type CommitteeFeedItem struct {
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Published *time.Time `json:"published,omitempty"`
	Summary   string     `json:"summary,omitempty"`
}

type CommitteeFeedResponse struct {
	CommitteeID string              `json:"committee_id"`
	FeedURL     string              `json:"feed_url"`
	Items       []CommitteeFeedItem `json:"items"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM
// ═══════════════════════════════════════════════════════════

func (a *AssignmentList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AssignmentList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AssignmentList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AssignmentList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]CommitteeAssignment{})
	}
	return json.Marshal(a)
}
