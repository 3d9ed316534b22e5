package lookup_controller

import (
	"errors"
	"net/http"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

var (
	zipOnce   sync.Once
	zipLookup *services.ZipLookupService

	zipPattern = regexp.MustCompile(`^\d{5}$`)
)

func zipLookupService() *services.ZipLookupService {
	zipOnce.Do(func() {
		zipLookup = services.NewZipLookupService()
	})
	return zipLookup
}

// LookupByZip godoc
// @Summary Find representatives by zip code
// @Description Resolves a five-digit zip to its congressional delegation, with bioguide ids and photos attached where the directory recognizes the name.
// @Tags lookup
// @Produce json
// @Param zip path string true "Five-digit zip code"
// @Success 200 {object} models.ApiResponse{data=models.ZipLookupResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /lookup/zip/{zip} [get]
func LookupByZip(c *gin.Context) {
	zip := c.Param("zip")
	if !zipPattern.MatchString(zip) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid zip code"))
		return
	}

	response, cache, err := zipLookupService().Lookup(c.Request.Context(), zip)
	if err != nil {
		if errors.Is(err, services.ErrUpstreamUnreachable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Unable to reach representative lookup"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to look up representatives"))
		return
	}

	c.JSON(http.StatusOK, models.CachedResponse(c, "Representatives fetched successfully", response, cache))
}
