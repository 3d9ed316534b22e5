package news_controller

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

var (
	gnewsOnce sync.Once
	gnews     *services.GNewsService
)

func gnewsService() *services.GNewsService {
	gnewsOnce.Do(func() {
		gnews = services.NewGNewsService()
	})
	return gnews
}

// GetMemberNews godoc
// @Summary Get recent news about a member
// @Description Up to ten GNews articles from the last 30 days mentioning the member's full name as an exact phrase.
// @Tags news
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse{data=models.NewsResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /legislators/{bioguideID}/news [get]
func GetMemberNews(c *gin.Context) {
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

	news, cache, err := gnewsService().SearchMember(c.Request.Context(), bioguideID, member.FullName)
	if err != nil {
		respondUpstreamError(c, err, "news")
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "News fetched successfully", news, cache))
}

// respondUpstreamError maps proxy failures for the news/video endpoints.
func respondUpstreamError(c *gin.Context, err error, what string) {
	if errors.Is(err, services.ErrUpstreamUnreachable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Unable to reach "+what+" provider"))
		return
	}
	if status := services.UpstreamStatusCode(err); status != 0 {
		c.JSON(status, models.ErrorResponse(c, "Upstream "+what+" API error"))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch "+what))
}
