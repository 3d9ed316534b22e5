package legislation_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetCosponsoredLegislation godoc
// @Summary Get bills cosponsored by a member
// @Description One page of cosponsored legislation proxied from congress.gov, same contract as the sponsored endpoint.
// @Tags legislation
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Param limit query int false "Results per page (max 250)" default(20)
// @Param offset query int false "Starting position" default(0)
// @Success 200 {object} models.ApiResponse{data=models.LegislationResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /legislators/{bioguideID}/cosponsored-legislation [get]
func GetCosponsoredLegislation(c *gin.Context) {
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

	limit, offset := parsePagination(c)

	response, cache, err := congressService().CosponsoredLegislation(c.Request.Context(), bioguideID, limit, offset)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "Cosponsored legislation fetched", response, cache))
}
