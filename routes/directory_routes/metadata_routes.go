package directory_routes

import (
	"time"

	"github.com/ethoz1970/congress-directory/controllers/directory/filter_controller"
	"github.com/ethoz1970/congress-directory/controllers/directory/lookup_controller"
	"github.com/ethoz1970/congress-directory/controllers/directory/member_controller"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupMetadataRoutes sets up the stats, filter metadata and lookup routes
func SetupMetadataRoutes(router *gin.RouterGroup) {
	router.GET("/stats", member_controller.GetStats)
	router.GET("/filters/metadata", filter_controller.GetFilterMetadata)

	lookup := router.Group("/lookup")
	lookup.Use(middleware.RateLimiter(30, time.Minute))
	{
		lookup.GET("/zip/:zip", lookup_controller.LookupByZip)
	}
}
