package directory_routes

import (
	"time"

	"github.com/ethoz1970/congress-directory/controllers/directory/legislation_controller"
	"github.com/ethoz1970/congress-directory/controllers/directory/member_controller"
	"github.com/ethoz1970/congress-directory/controllers/directory/news_controller"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupLegislatorRoutes sets up the directory routes (public, no auth required)
func SetupLegislatorRoutes(router *gin.RouterGroup) {
	legislators := router.Group("/legislators")
	{
		legislators.GET("", member_controller.GetMembers) // Filterable directory
		legislators.GET("/state/:state", member_controller.GetDelegation)
		legislators.GET("/:bioguideID", member_controller.GetMemberByID)
		legislators.GET("/:bioguideID/committees", member_controller.GetMemberCommittees)
	}

	// Proxy routes spend third-party API quota, so they sit behind the limiter
	proxied := router.Group("/legislators")
	proxied.Use(middleware.RateLimiter(30, time.Minute))
	{
		proxied.GET("/:bioguideID/sponsored-legislation", legislation_controller.GetSponsoredLegislation)
		proxied.GET("/:bioguideID/cosponsored-legislation", legislation_controller.GetCosponsoredLegislation)
		proxied.GET("/:bioguideID/legislation-summary", legislation_controller.GetLegislationSummary)
		proxied.GET("/:bioguideID/news", news_controller.GetMemberNews)
		proxied.GET("/:bioguideID/videos", news_controller.GetMemberVideos)
	}

	// Legacy alias kept for clients built against the senators-only API
	router.GET("/senators", member_controller.GetSenators)
}
