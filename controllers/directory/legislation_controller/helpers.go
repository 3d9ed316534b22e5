package legislation_controller

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

var (
	congressOnce sync.Once
	congress     *services.CongressService
)

// congressService builds the client on first use, after main has loaded
// the environment.
func congressService() *services.CongressService {
	congressOnce.Do(func() {
		congress = services.NewCongressService()
	})
	return congress
}

// parsePagination reads limit/offset with the upstream's bounds: limit
// defaults to 20 and caps at 250, offset defaults to 0.
func parsePagination(c *gin.Context) (limit, offset int) {
	limit = 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 250 {
		limit = 250
	}

	if raw := c.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// respondUpstreamError maps a proxy failure onto the response: unreachable
// becomes 503, an upstream status is forwarded, anything else is a 500.
func respondUpstreamError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUpstreamUnreachable) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Unable to reach Congress.gov API"))
		return
	}
	if status := services.UpstreamStatusCode(err); status != 0 {
		c.JSON(status, models.ErrorResponse(c, "Congress.gov API error"))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch legislation"))
}
