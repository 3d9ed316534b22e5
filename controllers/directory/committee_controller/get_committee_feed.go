package committee_controller

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

var (
	feedOnce sync.Once
	feed     *services.FeedService
)

func feedService() *services.FeedService {
	feedOnce.Do(func() {
		feed = services.NewFeedService()
	})
	return feed
}

// GetCommitteeFeed godoc
// @Summary Get a committee's activity feed
// @Description The committee's RSS feed parsed into a uniform shape, newest first. Committees without a feed URL answer 404.
// @Tags committees
// @Produce json
// @Param committeeID path string true "Committee thomas ID"
// @Success 200 {object} models.ApiResponse{data=models.CommitteeFeedResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /committees/{committeeID}/feed [get]
func GetCommitteeFeed(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var committee models.Committee
	if err := config.DirectoryGorm.WithContext(ctx).
		First(&committee, "thomas_id = ?", c.Param("committeeID")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Committee not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch committee"))
		return
	}

	if committee.RSSURL == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Committee has no RSS feed"))
		return
	}

	response, cache, err := feedService().CommitteeFeed(c.Request.Context(), &committee)
	if err != nil {
		if errors.Is(err, services.ErrUpstreamUnreachable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Unable to reach committee feed"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to parse committee feed"))
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "Committee feed fetched successfully", response, cache))
}
