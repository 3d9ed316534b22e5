package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/ethoz1970/congress-directory/models"
)

// Committee RSS feeds update a few times a day at most; an hour of cache
// keeps us polite to house.gov and senate.gov servers.
const feedCacheTTL = time.Hour

const maxFeedItems = 20

// FeedService fetches and normalizes committee activity feeds.
type FeedService struct {
	parser *gofeed.Parser
}

func NewFeedService() *FeedService {
	parser := gofeed.NewParser()
	parser.UserAgent = "congress-directory/1.0"
	return &FeedService{parser: parser}
}

// CommitteeFeed parses the committee's RSS feed into the API shape,
// newest first, capped at 20 items.
func (s *FeedService) CommitteeFeed(ctx context.Context, committee *models.Committee) (*models.CommitteeFeedResponse, *models.CacheInfo, error) {
	key := "feed:" + committee.ThomasID
	return fetchCached(ctx, key, feedCacheTTL, func(ctx context.Context) (*models.CommitteeFeedResponse, error) {
		feed, err := s.parser.ParseURLWithContext(committee.RSSURL, ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
		}

		items := make([]models.CommitteeFeedItem, 0, len(feed.Items))
		for _, item := range feed.Items {
			items = append(items, models.CommitteeFeedItem{
				Title:     item.Title,
				Link:      item.Link,
				Published: item.PublishedParsed,
				Summary:   item.Description,
			})
			if len(items) == maxFeedItems {
				break
			}
		}

		return &models.CommitteeFeedResponse{
			CommitteeID: committee.ThomasID,
			FeedURL:     committee.RSSURL,
			Items:       items,
		}, nil
	})
}
