package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/spf13/cobra"
)

const govtrackAnalysisBase = "https://www.govtrack.us/data/analysis/by-congress"

func govtrackBase() string {
	if base := os.Getenv("GOVTRACK_ANALYSIS_BASE"); base != "" {
		return base
	}
	return govtrackAnalysisBase
}

var ideologyCongress int

var ideologyCmd = &cobra.Command{
	Use:   "ideology",
	Short: "Import GovTrack ideology and leadership scores",
	Long: `Downloads GovTrack's sponsorship analysis for both chambers and matches
rows to members through their govtrack id. Ideology runs left (low) to
right (high); leadership is a PageRank-style influence score. Members
without a scored row keep null scores.`,
	RunE: runIdeology,
}

func init() {
	ideologyCmd.Flags().IntVar(&ideologyCongress, "congress", 118, "Congress number to pull the analysis for")
}

type govtrackScore struct {
	ideology   float64
	leadership *float64
}

// fetchSponsorshipAnalysis downloads one chamber's analysis CSV and
// indexes the rows that carry an ideology value by govtrack id.
func fetchSponsorshipAnalysis(congress int, chamber string) (map[int]govtrackScore, error) {
	url := fmt.Sprintf("%s/%d/sponsorshipanalysis_%s.txt", govtrackBase(), congress, chamber)
	log.Printf("Fetching %s...", url)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "congress-directory/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"ID", "ideology", "leadership"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("analysis file missing %q column", required)
		}
	}

	scores := map[int]govtrackScore{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id, err := strconv.Atoi(strings.TrimSpace(record[col["ID"]]))
		if err != nil {
			continue
		}
		ideology, err := strconv.ParseFloat(strings.TrimSpace(record[col["ideology"]]), 64)
		if err != nil {
			continue
		}

		score := govtrackScore{ideology: ideology}
		if lead, err := strconv.ParseFloat(strings.TrimSpace(record[col["leadership"]]), 64); err == nil {
			score.leadership = &lead
		}
		scores[id] = score
	}

	log.Printf("  Found %d scored members", len(scores))
	return scores, nil
}

func runIdeology(cmd *cobra.Command, args []string) error {
	banner(fmt.Sprintf("GovTrack Ideology Import — %dth Congress", ideologyCongress))

	scores := map[int]govtrackScore{}
	for _, chamber := range []string{"h", "s"} {
		chamberScores, err := fetchSponsorshipAnalysis(ideologyCongress, chamber)
		if err != nil {
			log.Printf("⚠️ %v", err)
			continue
		}
		for id, score := range chamberScores {
			scores[id] = score
		}
	}
	log.Printf("Total members with valid ideology scores: %d", len(scores))

	var members []models.Member
	if err := config.DirectoryGorm.
		Select("bioguide_id", "full_name", "external_ids").
		Find(&members).Error; err != nil {
		return fmt.Errorf("loading members: %w", err)
	}

	updated, noID, noScore := 0, 0, 0
	var minScore, maxScore float64
	for _, member := range members {
		govtrackID := member.ExternalIDs.GovTrack
		if govtrackID == 0 {
			noID++
			continue
		}
		score, ok := scores[govtrackID]
		if !ok {
			noScore++
			continue
		}

		err := config.DirectoryGorm.Model(&models.Member{}).
			Where("bioguide_id = ?", member.BioguideID).
			Updates(map[string]interface{}{
				"ideology_score":   score.ideology,
				"leadership_score": score.leadership,
			}).Error
		if err != nil {
			return fmt.Errorf("updating %s: %w", member.BioguideID, err)
		}

		if updated == 0 || score.ideology < minScore {
			minScore = score.ideology
		}
		if updated == 0 || score.ideology > maxScore {
			maxScore = score.ideology
		}
		updated++
	}

	fmt.Println()
	banner(fmt.Sprintf("Import complete: %d updated, %d without govtrack id, %d without score", updated, noID, noScore))
	if updated > 0 {
		fmt.Printf("\nIdeology score range: %.3f to %.3f (low = liberal, high = conservative)\n", minScore, maxScore)
	}
	return nil
}
