package admin_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	directory_cache "github.com/ethoz1970/congress-directory/cache"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// ClearCache godoc
// @Summary Clear server caches
// @Description Drops the in-process snapshot/committee cache and every memoized upstream response. Importers call this after a data refresh so the next request sees new rows.
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/cache/clear [post]
func ClearCache(c *gin.Context) {
	directory_cache.Invalidate()

	deleted, err := services.ClearProxyCache(c.Request.Context())
	if err != nil {
		log.Printf("❌ [admin.cache] Failed to clear proxy cache: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear proxy cache"))
		return
	}

	log.Printf("✅ [admin.cache] Caches cleared (%d proxy entries)", deleted)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Caches cleared", map[string]interface{}{
		"proxy_entries_deleted": deleted,
	}))
}
