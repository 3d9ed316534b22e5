package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	govFile  string
	govClear bool
)

var governorsCmd = &cobra.Command{
	Use:   "governors",
	Short: "Import governors from a local governors-current.json",
	Long: `Imports sitting governors into the legislators table under synthetic
GOV-{state} ids with chamber "Governor". Governors show up in delegation
and stats endpoints but never in the filterable directory.`,
	RunE: runGovernors,
}

func init() {
	governorsCmd.Flags().StringVar(&govFile, "file", "governors-current.json", "Path to the governors dataset")
	governorsCmd.Flags().BoolVar(&govClear, "clear", false, "Delete existing governor rows before importing")
}

// rawGovernor mirrors one entry of the governors dataset. The shape
// tracks legislators-current.json with the ids under id_external.
type rawGovernor struct {
	IDExternal struct {
		Wikipedia   string `json:"wikipedia"`
		Ballotpedia string `json:"ballotpedia"`
		Twitter     string `json:"twitter"`
		YouTube     string `json:"youtube"`
		Facebook    string `json:"facebook"`
	} `json:"id_external"`
	Name struct {
		First        string `json:"first"`
		Middle       string `json:"middle"`
		Last         string `json:"last"`
		OfficialFull string `json:"official_full"`
	} `json:"name"`
	Bio struct {
		Birthday string `json:"birthday"`
		Gender   string `json:"gender"`
	} `json:"bio"`
	PhotoURL string    `json:"photo_url"`
	Terms    []rawTerm `json:"terms"`
}

func buildGovernor(raw rawGovernor) *models.Member {
	if len(raw.Terms) == 0 {
		return nil
	}
	current := raw.Terms[len(raw.Terms)-1]
	state := current.State

	return &models.Member{
		BioguideID:  "GOV-" + state,
		FirstName:   raw.Name.First,
		LastName:    raw.Name.Last,
		FullName:    fullNameOf(raw.Name.OfficialFull, raw.Name.First, raw.Name.Middle, raw.Name.Last),
		Party:       current.Party,
		State:       state,
		Chamber:     "Governor",
		Gender:      raw.Bio.Gender,
		TermStart:   parseDate(current.Start),
		TermEnd:     parseDate(current.End),
		Birthday:    parseDate(raw.Bio.Birthday),
		Phone:       strPtr(current.Phone),
		Office:      strPtr(current.Office),
		Website:     strPtr(current.URL),
		ContactForm: strPtr(current.ContactForm),
		PhotoURL:    strPtr(raw.PhotoURL),
		ExternalIDs: models.ExternalIDs{
			Wikipedia:   raw.IDExternal.Wikipedia,
			Ballotpedia: raw.IDExternal.Ballotpedia,
			Twitter:     dropPriorHandle(raw.IDExternal.Twitter),
			YouTube:     dropPriorHandle(raw.IDExternal.YouTube),
			Facebook:    dropPriorHandle(raw.IDExternal.Facebook),
		},
	}
}

// dropPriorHandle blanks handles the dataset records as "prior: ..."
// placeholders for accounts the governor no longer uses.
func dropPriorHandle(handle string) string {
	if strings.Contains(strings.ToLower(handle), "prior") {
		return ""
	}
	return handle
}

func runGovernors(cmd *cobra.Command, args []string) error {
	banner("Governor Import")

	log.Printf("Loading governors from %s...", govFile)
	data, err := os.ReadFile(govFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", govFile, err)
	}
	var raw []rawGovernor
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", govFile, err)
	}

	governors := make([]models.Member, 0, len(raw))
	for _, r := range raw {
		gov := buildGovernor(r)
		if gov == nil {
			continue
		}
		governors = append(governors, *gov)
	}
	log.Printf("Found %d governors", len(governors))

	err = config.DirectoryGorm.Transaction(func(tx *gorm.DB) error {
		if govClear {
			res := tx.Where("chamber = ?", "Governor").Delete(&models.Member{})
			if res.Error != nil {
				return res.Error
			}
			log.Printf("Deleted %d existing governor records", res.RowsAffected)
		}

		// Replace row by row so a rerun without --clear refreshes in place
		for i := range governors {
			gov := &governors[i]
			if err := tx.Where("bioguide_id = ?", gov.BioguideID).Delete(&models.Member{}).Error; err != nil {
				return err
			}
			if err := tx.Create(gov).Error; err != nil {
				return fmt.Errorf("creating %s: %w", gov.BioguideID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Imported %d governors", len(governors))
	printPartyBreakdown(governors)

	states := map[string]bool{}
	for _, g := range governors {
		states[g.State] = true
	}
	fmt.Printf("\nStates covered: %d\n", len(states))
	return nil
}
