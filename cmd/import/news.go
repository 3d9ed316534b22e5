package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/spf13/cobra"
	"gorm.io/datatypes"
)

var (
	newsLimit int
	newsDays  int
	newsDelay time.Duration
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Refresh GNews mention counts",
	Long: `Counts news articles mentioning each member over the search window and
stores the count plus the top three headlines. The free GNews tier allows
100 requests a day, so the command takes the members whose counts are
oldest (never-updated first) and cycles through the chamber over several
days.`,
	RunE: runNews,
}

func init() {
	newsCmd.Flags().IntVar(&newsLimit, "limit", 100, "Max members to update per run")
	newsCmd.Flags().IntVar(&newsDays, "days", 30, "Days to search back")
	newsCmd.Flags().DurationVar(&newsDelay, "delay", time.Second, "Delay between requests")
}

// newsHeadline is the stored shape of one sample headline.
type newsHeadline struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

func runNews(cmd *cobra.Command, args []string) error {
	if os.Getenv("GNEWS_API_KEY") == "" {
		return fmt.Errorf("GNEWS_API_KEY not set (get a free key at https://gnews.io/)")
	}

	banner("News Mentions Import")
	fmt.Printf("Search period: last %d days, max members: %d\n\n", newsDays, newsLimit)

	gnews := services.NewGNewsService()
	ctx := cmd.Context()

	var members []models.Member
	if err := config.DirectoryGorm.
		Select("bioguide_id", "full_name", "news_updated_at").
		Order("news_updated_at ASC NULLS FIRST").
		Limit(newsLimit).
		Find(&members).Error; err != nil {
		return fmt.Errorf("loading members: %w", err)
	}
	log.Printf("Found %d members to update", len(members))

	updated, failed := 0, 0
	for i, member := range members {
		fmt.Printf("[%d/%d] Searching: %s... ", i+1, len(members), member.FullName)

		total, articles, err := gnews.Search(ctx, member.FullName, newsDays)
		if err != nil {
			fmt.Println("✗ error")
			log.Printf("  ⚠️ %s: %v", member.BioguideID, err)
			failed++
		} else {
			headlines := make([]newsHeadline, 0, 3)
			for _, article := range articles {
				if len(headlines) == 3 {
					break
				}
				headlines = append(headlines, newsHeadline{
					Title:  article.Title,
					Source: article.Source.Name,
					Date:   article.PublishedAt,
					URL:    article.URL,
				})
			}
			blob, _ := json.Marshal(headlines)

			err := config.DirectoryGorm.Model(&models.Member{}).
				Where("bioguide_id = ?", member.BioguideID).
				Updates(map[string]interface{}{
					"news_mentions":         total,
					"news_sample_headlines": datatypes.JSON(blob),
					"news_updated_at":       time.Now(),
				}).Error
			if err != nil {
				return fmt.Errorf("updating %s: %w", member.BioguideID, err)
			}
			fmt.Printf("✓ %d articles\n", total)
			updated++
		}

		if i < len(members)-1 {
			time.Sleep(newsDelay)
		}
	}

	fmt.Println()
	banner(fmt.Sprintf("Import complete: %d updated, %d errors", updated, failed))
	return nil
}
