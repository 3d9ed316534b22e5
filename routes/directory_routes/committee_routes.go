package directory_routes

import (
	"time"

	"github.com/ethoz1970/congress-directory/controllers/directory/committee_controller"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCommitteeRoutes sets up committee routes (public, no auth required)
func SetupCommitteeRoutes(router *gin.RouterGroup) {
	committees := router.Group("/committees")
	{
		committees.GET("", committee_controller.GetCommittees) // List with type filter
		committees.GET("/:committeeID", committee_controller.GetCommitteeByID)
		committees.GET("/:committeeID/members", committee_controller.GetCommitteeMembers)
	}

	// RSS fetches hit external servers, same limiter as the other proxies
	feeds := router.Group("/committees")
	feeds.Use(middleware.RateLimiter(30, time.Minute))
	{
		feeds.GET("/:committeeID/feed", committee_controller.GetCommitteeFeed)
	}
}
