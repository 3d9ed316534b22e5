package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	directory_cache "github.com/ethoz1970/congress-directory/cache"
	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// The snapshot is every sitting senator and representative in the fixed
// (state, chamber, last_name) order the facet engine treats as canonical.
// Governors live in the same table but stay out of the snapshot.
//
// Loaded through pgx rather than GORM: this is the hot read behind every
// directory request, and a flat column scan keeps it one round trip with no
// reflection.
const snapshotQuery = `
	SELECT bioguide_id, first_name, last_name, full_name, nickname,
	       party, caucus, state, chamber, gender,
	       district, state_rank, senate_class,
	       term_start, term_end, first_term_start, total_terms,
	       birthday,
	       phone, office, website, contact_form,
	       photo_url, external_ids,
	       sponsored_count, cosponsored_count, enacted_count, legislation_updated_at,
	       ideology_score, leadership_score,
	       news_mentions, news_sample_headlines, news_updated_at,
	       created_at, updated_at
	FROM legislators
	WHERE chamber IN ('Senate', 'House')
	ORDER BY state, chamber, last_name`

// LoadSnapshot returns the cached directory snapshot, hitting Postgres only
// when the cache is cold. Callers must treat the returned slice as
// read-only; the facet engine copies before sorting.
func LoadSnapshot(ctx context.Context) ([]models.Member, error) {
	if cached, ok := directory_cache.GetSnapshot(); ok {
		return cached, nil
	}

	rows, err := config.DirectoryDB.Query(ctx, snapshotQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query legislators: %w", err)
	}
	defer rows.Close()

	members := make([]models.Member, 0, 550)
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.BioguideID, &m.FirstName, &m.LastName, &m.FullName, &m.Nickname,
			&m.Party, &m.Caucus, &m.State, &m.Chamber, &m.Gender,
			&m.District, &m.StateRank, &m.SenateClass,
			&m.TermStart, &m.TermEnd, &m.FirstTermStart, &m.TotalTerms,
			&m.Birthday,
			&m.Phone, &m.Office, &m.Website, &m.ContactForm,
			&m.PhotoURL, &m.ExternalIDs,
			&m.SponsoredCount, &m.CosponsoredCount, &m.EnactedCount, &m.LegislationUpdatedAt,
			&m.IdeologyScore, &m.LeadershipScore,
			&m.NewsMentions, &m.NewsSampleHeadlines, &m.NewsUpdatedAt,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan legislator row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read legislators: %w", err)
	}

	directory_cache.SetSnapshot(members)
	log.Printf("✅ [directory.service] Snapshot loaded: %d members", len(members))
	return members, nil
}

// GetMember fetches a single member by bioguide id, governors included.
// Returns (nil, nil) when no row matches.
func GetMember(ctx context.Context, bioguideID string) (*models.Member, error) {
	// Snapshot first: covers every congressional member without a query.
	if snapshot, ok := directory_cache.GetSnapshot(); ok {
		for i := range snapshot {
			if snapshot[i].BioguideID == bioguideID {
				m := snapshot[i]
				return &m, nil
			}
		}
	}

	var member models.Member
	if err := config.DirectoryGorm.WithContext(ctx).First(&member, "bioguide_id = ?", bioguideID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// LoadCommittees returns all committees, cached alongside the snapshot.
func LoadCommittees(ctx context.Context) ([]models.Committee, error) {
	if cached, ok := directory_cache.GetCommittees(); ok {
		return cached, nil
	}

	var committees []models.Committee
	if err := config.DirectoryGorm.WithContext(ctx).Order("name").Find(&committees).Error; err != nil {
		return nil, fmt.Errorf("failed to load committees: %w", err)
	}

	directory_cache.SetCommittees(committees)
	return committees, nil
}

// GetCommitteeMembership returns a member's committee assignments, or
// (nil, nil) when the member has none on record.
func GetCommitteeMembership(ctx context.Context, bioguideID string) (*models.CommitteeMembership, error) {
	var membership models.CommitteeMembership
	if err := config.DirectoryGorm.WithContext(ctx).First(&membership, "bioguide_id = ?", bioguideID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}
