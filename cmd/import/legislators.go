package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const legislatorsURL = unitedStatesBase + "/legislators-current.json"

var legKeepStats bool

var legislatorsCmd = &cobra.Command{
	Use:   "legislators",
	Short: "Replace the Senate and House rows from legislators-current.json",
	Long: `Fetches the unitedstates legislators-current.json dataset and replaces
every Senate and House row. Governor rows are untouched; they have their
own command.

By default imported rows start with zeroed legislation, ideology and news
columns. Pass --keep-stats to carry those over from the rows being
replaced.`,
	RunE: runLegislators,
}

func init() {
	legislatorsCmd.Flags().BoolVar(&legKeepStats, "keep-stats", false, "Preserve previously imported legislation, ideology, news and photo columns")
}

// rawLegislator mirrors one entry of legislators-current.json.
type rawLegislator struct {
	ID struct {
		Bioguide    string `json:"bioguide"`
		Thomas      string `json:"thomas"`
		GovTrack    int    `json:"govtrack"`
		OpenSecrets string `json:"opensecrets"`
		VoteSmart   int    `json:"votesmart"`
		Wikipedia   string `json:"wikipedia"`
		Ballotpedia string `json:"ballotpedia"`
	} `json:"id"`
	Name struct {
		First        string `json:"first"`
		Middle       string `json:"middle"`
		Last         string `json:"last"`
		OfficialFull string `json:"official_full"`
		Nickname     string `json:"nickname"`
	} `json:"name"`
	Bio struct {
		Birthday string `json:"birthday"`
		Gender   string `json:"gender"`
	} `json:"bio"`
	Terms []rawTerm `json:"terms"`
}

type rawTerm struct {
	Type        string `json:"type"` // sen | rep
	Start       string `json:"start"`
	End         string `json:"end"`
	State       string `json:"state"`
	Party       string `json:"party"`
	Caucus      string `json:"caucus"`
	District    *int   `json:"district"`
	Class       *int   `json:"class"`
	StateRank   string `json:"state_rank"`
	Phone       string `json:"phone"`
	Office      string `json:"office"`
	URL         string `json:"url"`
	ContactForm string `json:"contact_form"`
}

// buildMember flattens a raw legislator onto the directory row. Returns
// nil for entries without terms or with a non-congressional current term.
func buildMember(raw rawLegislator) *models.Member {
	if len(raw.Terms) == 0 {
		return nil
	}
	current := raw.Terms[len(raw.Terms)-1]

	var chamber string
	switch current.Type {
	case "sen":
		chamber = "Senate"
	case "rep":
		chamber = "House"
	default:
		return nil
	}

	member := &models.Member{
		BioguideID:  raw.ID.Bioguide,
		FirstName:   raw.Name.First,
		LastName:    raw.Name.Last,
		FullName:    fullNameOf(raw.Name.OfficialFull, raw.Name.First, raw.Name.Middle, raw.Name.Last),
		Nickname:    strPtr(raw.Name.Nickname),
		Party:       current.Party,
		Caucus:      strPtr(current.Caucus),
		State:       current.State,
		Chamber:     chamber,
		Gender:      raw.Bio.Gender,
		TermStart:   parseDate(current.Start),
		TermEnd:     parseDate(current.End),
		Birthday:    parseDate(raw.Bio.Birthday),
		Phone:       strPtr(current.Phone),
		Office:      strPtr(current.Office),
		Website:     strPtr(current.URL),
		ContactForm: strPtr(current.ContactForm),
		TotalTerms:  len(raw.Terms),
		ExternalIDs: models.ExternalIDs{
			Thomas:      raw.ID.Thomas,
			GovTrack:    raw.ID.GovTrack,
			OpenSecrets: raw.ID.OpenSecrets,
			VoteSmart:   raw.ID.VoteSmart,
			Wikipedia:   raw.ID.Wikipedia,
			Ballotpedia: raw.ID.Ballotpedia,
		},
	}

	// Earliest term start anchors the years-in-office buckets
	for _, term := range raw.Terms {
		start := parseDate(term.Start)
		if start == nil {
			continue
		}
		if member.FirstTermStart == nil || start.Before(*member.FirstTermStart) {
			member.FirstTermStart = start
		}
	}

	switch chamber {
	case "Senate":
		member.StateRank = strPtr(current.StateRank)
		member.SenateClass = current.Class
	case "House":
		member.District = current.District
	}

	return member
}

// fullNameOf prefers the dataset's official_full, assembling one from
// the name parts when it is missing.
func fullNameOf(officialFull, first, middle, last string) string {
	if officialFull != "" {
		return officialFull
	}
	return strings.Join(strings.Fields(first+" "+middle+" "+last), " ")
}

func runLegislators(cmd *cobra.Command, args []string) error {
	banner("Legislator Import")

	log.Println("Fetching legislators-current.json...")
	var raw []rawLegislator
	if err := fetchJSON(legislatorsURL, &raw); err != nil {
		return err
	}

	members := make([]models.Member, 0, len(raw))
	senators, representatives := 0, 0
	for _, r := range raw {
		member := buildMember(r)
		if member == nil {
			continue
		}
		if member.Chamber == "Senate" {
			senators++
		} else {
			representatives++
		}
		members = append(members, *member)
	}
	log.Printf("Found %d senators and %d representatives (%d total)", senators, representatives, len(members))

	if legKeepStats {
		if err := carryStats(members); err != nil {
			return err
		}
	}

	err := config.DirectoryGorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chamber IN ?", []string{"Senate", "House"}).Delete(&models.Member{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(members, 100).Error
	})
	if err != nil {
		return fmt.Errorf("replacing legislators: %w", err)
	}

	log.Printf("✅ Imported %d legislators", len(members))
	printPartyBreakdown(members)
	return nil
}

// carryStats copies the slow-to-rebuild columns (legislation counts,
// ideology, news, photo) from the rows about to be replaced.
func carryStats(members []models.Member) error {
	var existing []models.Member
	if err := config.DirectoryGorm.
		Select("bioguide_id", "sponsored_count", "cosponsored_count", "enacted_count", "legislation_updated_at",
			"ideology_score", "leadership_score", "news_mentions", "news_sample_headlines", "news_updated_at", "photo_url").
		Where("chamber IN ?", []string{"Senate", "House"}).
		Find(&existing).Error; err != nil {
		return fmt.Errorf("loading existing stats: %w", err)
	}

	stats := make(map[string]models.Member, len(existing))
	for _, e := range existing {
		stats[e.BioguideID] = e
	}

	carried := 0
	for i := range members {
		prev, ok := stats[members[i].BioguideID]
		if !ok {
			continue
		}
		members[i].SponsoredCount = prev.SponsoredCount
		members[i].CosponsoredCount = prev.CosponsoredCount
		members[i].EnactedCount = prev.EnactedCount
		members[i].LegislationUpdatedAt = prev.LegislationUpdatedAt
		members[i].IdeologyScore = prev.IdeologyScore
		members[i].LeadershipScore = prev.LeadershipScore
		members[i].NewsMentions = prev.NewsMentions
		members[i].NewsSampleHeadlines = prev.NewsSampleHeadlines
		members[i].NewsUpdatedAt = prev.NewsUpdatedAt
		members[i].PhotoURL = prev.PhotoURL
		carried++
	}
	log.Printf("✓ Carried stats for %d members", carried)
	return nil
}

func printPartyBreakdown(members []models.Member) {
	parties := map[string]int{}
	for _, m := range members {
		parties[m.Party]++
	}
	names := make([]string, 0, len(parties))
	for p := range parties {
		names = append(names, p)
	}
	sort.Strings(names)

	fmt.Println("\nBreakdown by party:")
	for _, p := range names {
		fmt.Printf("  %s: %d\n", p, parties[p])
	}
}
