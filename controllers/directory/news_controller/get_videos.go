package news_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

var (
	youtubeOnce sync.Once
	youtube     *services.YouTubeService
)

func youtubeService() *services.YouTubeService {
	youtubeOnce.Do(func() {
		youtube = services.NewYouTubeService()
	})
	return youtube
}

// GetMemberVideos godoc
// @Summary Get recent videos about a member
// @Description Up to six YouTube search results for the member's full name.
// @Tags news
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse{data=models.VideosResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /legislators/{bioguideID}/videos [get]
func GetMemberVideos(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	bioguideID := c.Param("bioguideID")

	member, err := services.GetMember(ctx, bioguideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch member"))
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Legislator not found"))
		return
	}

	videos, cache, err := youtubeService().SearchMember(c.Request.Context(), bioguideID, member.FullName)
	if err != nil {
		respondUpstreamError(c, err, "video")
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "Videos fetched successfully", videos, cache))
}
