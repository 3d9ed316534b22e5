package admin_routes

import (
	"github.com/ethoz1970/congress-directory/controllers/admin/admin_controller"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up all admin routes with appropriate middleware
func SetupAdminRoutes(rg *gin.RouterGroup) {
	// ════════════════════════════════════════════════════════════
	// Base Admin Group
	// ════════════════════════════════════════════════════════════

	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_controller.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// Cache
		protected.POST("/cache/clear", admin_controller.ClearCache)

		// Exports
		protected.GET("/export/delegation/:state", admin_controller.ExportDelegationPDF)
	}
}
