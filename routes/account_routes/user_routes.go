package account_routes

import (
	"github.com/ethoz1970/congress-directory/controllers/account/user_controller"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user profile routes
func SetupUserRoutes(router *gin.RouterGroup) {
	me := router.Group("/me")
	me.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		me.GET("", user_controller.GetMe)

		// Favorites
		me.GET("/favorites", user_controller.GetFavorites)
		me.POST("/favorites/:bioguideID", user_controller.AddFavorite)
		me.DELETE("/favorites/:bioguideID", user_controller.RemoveFavorite)
	}
}
