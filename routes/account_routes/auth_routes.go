package account_routes

import (
	"github.com/ethoz1970/congress-directory/controllers/account/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	// Authentication routes
	auth := router.Group("/auth")
	{
		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/google/onetap", auth_controller.GoogleOneTap)

		// Logout route
		auth.POST("/logout", auth_controller.Logout)
	}
}
