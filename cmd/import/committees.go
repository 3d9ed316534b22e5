package main

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/spf13/cobra"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	committeesURL = unitedStatesBase + "/committees-current.json"
	membershipURL = unitedStatesBase + "/committee-membership-current.json"
)

var committeesCmd = &cobra.Command{
	Use:   "committees",
	Short: "Replace committees and membership from the unitedstates dataset",
	Long: `Fetches committees-current.json and committee-membership-current.json
and rebuilds the committees and committee_memberships tables. Membership
is regrouped per member, denormalized with committee names, and stored in
display order: main committees first, titled seats first, then rank.`,
	RunE: runCommittees,
}

type rawCommittee struct {
	ThomasID       string            `json:"thomas_id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"` // house | senate | joint
	URL            string            `json:"url"`
	Jurisdiction   string            `json:"jurisdiction"`
	RSSURL         string            `json:"rss_url"`
	MinorityRSSURL string            `json:"minority_rss_url"`
	Subcommittees  []rawSubcommittee `json:"subcommittees"`
}

type rawSubcommittee struct {
	ThomasID string `json:"thomas_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// rawMembershipSeat is one member's seat on one committee in
// committee-membership-current.json.
type rawMembershipSeat struct {
	Bioguide string  `json:"bioguide"`
	Rank     *int    `json:"rank"`
	Title    *string `json:"title"`
	Party    *string `json:"party"`
}

func runCommittees(cmd *cobra.Command, args []string) error {
	banner("Committee Import")

	log.Println("Fetching committees-current.json...")
	var rawCommittees []rawCommittee
	if err := fetchJSON(committeesURL, &rawCommittees); err != nil {
		return err
	}
	log.Printf("Found %d committees", len(rawCommittees))

	log.Println("Fetching committee-membership-current.json...")
	var rawMembership map[string][]rawMembershipSeat
	if err := fetchJSON(membershipURL, &rawMembership); err != nil {
		return err
	}

	committees, names, err := buildCommittees(rawCommittees)
	if err != nil {
		return err
	}
	memberships := buildMemberships(rawMembership, names)

	err = config.DirectoryGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM committees").Error; err != nil {
			return err
		}
		if err := tx.CreateInBatches(committees, 100).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM committee_memberships").Error; err != nil {
			return err
		}
		return tx.CreateInBatches(memberships, 100).Error
	})
	if err != nil {
		return fmt.Errorf("replacing committees: %w", err)
	}

	totalSeats := 0
	for _, m := range memberships {
		totalSeats += len(m.Committees)
	}
	log.Printf("✅ Imported %d committees and membership for %d legislators (%d assignments)",
		len(committees), len(memberships), totalSeats)
	return nil
}

// buildCommittees converts the raw dataset rows and returns a name
// lookup covering committees and their subcommittees (compound ids like
// HSAG03).
func buildCommittees(raw []rawCommittee) ([]models.Committee, map[string]string, error) {
	committees := make([]models.Committee, 0, len(raw))
	names := make(map[string]string, len(raw)*4)

	for _, rc := range raw {
		if rc.ThomasID == "" {
			continue
		}
		names[rc.ThomasID] = rc.Name
		for _, sub := range rc.Subcommittees {
			names[rc.ThomasID+sub.ThomasID] = sub.Name
		}

		subs := rc.Subcommittees
		if subs == nil {
			subs = []rawSubcommittee{}
		}
		blob, err := json.Marshal(subs)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding subcommittees of %s: %w", rc.ThomasID, err)
		}

		committees = append(committees, models.Committee{
			ThomasID:      rc.ThomasID,
			Name:          rc.Name,
			Type:          rc.Type,
			URL:           rc.URL,
			Jurisdiction:  rc.Jurisdiction,
			RSSURL:        rc.RSSURL,
			MinorityURL:   rc.MinorityRSSURL,
			Subcommittees: datatypes.JSON(blob),
		})
	}
	return committees, names, nil
}

// buildMemberships regroups the committee-keyed dataset per member.
// Subcommittee ids are longer than the 4-character committee ids and
// carry their parent as a prefix.
func buildMemberships(raw map[string][]rawMembershipSeat, names map[string]string) []models.CommitteeMembership {
	byMember := map[string]models.AssignmentList{}

	committeeIDs := make([]string, 0, len(raw))
	for id := range raw {
		committeeIDs = append(committeeIDs, id)
	}
	sort.Strings(committeeIDs)

	for _, committeeID := range committeeIDs {
		isSubcommittee := len(committeeID) > 4

		var parentID, parentName *string
		if isSubcommittee {
			pid := committeeID[:4]
			pname := names[pid]
			parentID, parentName = &pid, &pname
		}

		committeeName := names[committeeID]
		if committeeName == "" {
			committeeName = committeeID
		}

		for _, seat := range raw[committeeID] {
			if seat.Bioguide == "" {
				continue
			}
			byMember[seat.Bioguide] = append(byMember[seat.Bioguide], models.CommitteeAssignment{
				CommitteeID:         committeeID,
				CommitteeName:       committeeName,
				IsSubcommittee:      isSubcommittee,
				ParentCommitteeID:   parentID,
				ParentCommitteeName: parentName,
				Rank:                seat.Rank,
				Title:               seat.Title,
				Party:               seat.Party,
			})
		}
	}

	memberships := make([]models.CommitteeMembership, 0, len(byMember))
	for bioguide, assignments := range byMember {
		sortAssignments(assignments)
		memberships = append(memberships, models.CommitteeMembership{
			BioguideID: bioguide,
			Committees: assignments,
		})
	}
	sort.Slice(memberships, func(i, j int) bool {
		return memberships[i].BioguideID < memberships[j].BioguideID
	})
	return memberships
}

// sortAssignments puts main committees before subcommittees, titled
// seats (Chair, Ranking Member) before regular ones, then sorts by rank.
func sortAssignments(assignments models.AssignmentList) {
	sort.SliceStable(assignments, func(i, j int) bool {
		a, b := assignments[i], assignments[j]
		if a.IsSubcommittee != b.IsSubcommittee {
			return !a.IsSubcommittee
		}
		aTitled := a.Title != nil && *a.Title != ""
		bTitled := b.Title != nil && *b.Title != ""
		if aTitled != bTitled {
			return aTitled
		}
		return rankValue(a.Rank) < rankValue(b.Rank)
	})
}

func rankValue(rank *int) int {
	if rank == nil {
		return 999
	}
	return *rank
}
