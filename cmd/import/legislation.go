package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/spf13/cobra"
)

const (
	legislationPageSize = 250
	rateLimitBackoff    = 60 * time.Second
)

var (
	legisForce bool
	legisLimit int
	legisDelay time.Duration
)

var legislationCmd = &cobra.Command{
	Use:   "legislation",
	Short: "Refresh sponsored/cosponsored counts from congress.gov",
	Long: `Walks every legislator's sponsored legislation on congress.gov in pages
of 250, counts bills whose latest action says the bill became public law,
and grabs the cosponsored total. Members refreshed within the last 24
hours are skipped unless --force is set.`,
	RunE: runLegislation,
}

func init() {
	legislationCmd.Flags().BoolVar(&legisForce, "force", false, "Refresh even members updated within the last 24h")
	legislationCmd.Flags().IntVar(&legisLimit, "limit", 0, "Only process the first N legislators (0 = all)")
	legislationCmd.Flags().DurationVar(&legisDelay, "delay", 500*time.Millisecond, "Delay between API calls")
}

func runLegislation(cmd *cobra.Command, args []string) error {
	banner("Legislation Import")
	congress := services.NewCongressService()
	ctx := cmd.Context()

	var members []models.Member
	if err := config.DirectoryGorm.
		Select("bioguide_id", "full_name", "legislation_updated_at").
		Where("chamber IN ?", []string{"Senate", "House"}).
		Order("bioguide_id").
		Find(&members).Error; err != nil {
		return fmt.Errorf("loading legislators: %w", err)
	}
	log.Printf("Found %d legislators", len(members))

	if legisLimit > 0 && len(members) > legisLimit {
		members = members[:legisLimit]
		log.Printf("Limited to %d legislators", legisLimit)
	}

	processed, skipped, failed := 0, 0, 0
	for i, member := range members {
		fmt.Printf("\n[%d/%d] %s (%s)\n", i+1, len(members), member.FullName, member.BioguideID)

		if !legisForce && member.LegislationUpdatedAt != nil && time.Since(*member.LegislationUpdatedAt) < 24*time.Hour {
			fmt.Println("  Refreshed within 24h, skipping")
			skipped++
			continue
		}

		stats, err := fetchLegislationStats(ctx, congress, member.BioguideID)
		if err != nil {
			log.Printf("  ⚠️ %s: %v", member.BioguideID, err)
			failed++
			continue
		}

		err = config.DirectoryGorm.Model(&models.Member{}).
			Where("bioguide_id = ?", member.BioguideID).
			Updates(map[string]interface{}{
				"sponsored_count":        stats.sponsored,
				"cosponsored_count":      stats.cosponsored,
				"enacted_count":          stats.enacted,
				"legislation_updated_at": time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("updating %s: %w", member.BioguideID, err)
		}

		fmt.Printf("  Sponsored: %d, Cosponsored: %d, Enacted: %d\n", stats.sponsored, stats.cosponsored, stats.enacted)
		processed++

		time.Sleep(legisDelay)
	}

	fmt.Println()
	banner(fmt.Sprintf("Import complete: %d processed, %d skipped, %d errors", processed, skipped, failed))
	return nil
}

type legislationStats struct {
	sponsored   int
	cosponsored int
	enacted     int
}

// fetchLegislationStats pages through the member's sponsored bills
// counting enacted ones, then fetches the cosponsored total. A 429 from
// congress.gov means the key ran hot; waiting 60 seconds clears it. A
// 404 means no record, which is a freshman with zero bills, not an error.
func fetchLegislationStats(ctx context.Context, congress *services.CongressService, bioguideID string) (*legislationStats, error) {
	stats := &legislationStats{}

	offset := 0
	for {
		total, bills, err := congress.SponsoredPage(ctx, bioguideID, legislationPageSize, offset)
		if err != nil {
			if services.UpstreamStatusCode(err) == http.StatusTooManyRequests {
				log.Println("  Rate limited, waiting 60 seconds...")
				time.Sleep(rateLimitBackoff)
				continue
			}
			if services.IsUpstreamNotFound(err) {
				return stats, nil
			}
			return nil, err
		}

		stats.sponsored = total
		for _, bill := range bills {
			if billEnacted(bill) {
				stats.enacted++
			}
		}

		offset += legislationPageSize
		if offset >= total {
			break
		}
		time.Sleep(legisDelay)
	}

	time.Sleep(legisDelay)

	for {
		total, err := congress.CosponsoredTotal(ctx, bioguideID)
		if err != nil {
			if services.UpstreamStatusCode(err) == http.StatusTooManyRequests {
				log.Println("  Rate limited, waiting 60 seconds...")
				time.Sleep(rateLimitBackoff)
				continue
			}
			if services.IsUpstreamNotFound(err) {
				return stats, nil
			}
			return nil, err
		}
		stats.cosponsored = total
		break
	}

	return stats, nil
}

// billEnacted reports whether the bill's latest action marks it as law.
func billEnacted(bill models.Bill) bool {
	if bill.LatestAction == nil {
		return false
	}
	return strings.Contains(strings.ToLower(bill.LatestAction.Text), "became public law")
}
