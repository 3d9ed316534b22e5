package legislation_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetLegislationSummary godoc
// @Summary Get a member's legislation summary
// @Description Sponsored and cosponsored totals plus the five most recent sponsored bills. Best effort: parts congress.gov fails to answer stay zero.
// @Tags legislation
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse{data=models.LegislationSummaryResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Router /legislators/{bioguideID}/legislation-summary [get]
func GetLegislationSummary(c *gin.Context) {
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

	summary, cache, err := congressService().LegislationSummary(c.Request.Context(), bioguideID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "Legislation summary fetched", summary, cache))
}
