// @title Congress Directory API
// @version 1.0
// @description Congressional directory backend: filterable member directory, committees, legislation and news proxies
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ethoz1970/congress-directory/config"
	_ "github.com/ethoz1970/congress-directory/docs"
	"github.com/ethoz1970/congress-directory/routes/account_routes"
	"github.com/ethoz1970/congress-directory/routes/admin_routes"
	"github.com/ethoz1970/congress-directory/routes/directory_routes"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// ✅ Initialize JWT Service (shared secret for user and admin tokens)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// Warm the directory snapshot so the first request doesn't pay the load
	ctx, cancel := config.WithTimeout()
	if _, err := services.LoadSnapshot(ctx); err != nil {
		log.Printf("⚠️ Snapshot warm-up failed, will retry on first request: %v", err)
	}
	cancel()

	// ✅ Configure CORS for all content types including PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public directory routes
	directory_routes.SetupLegislatorRoutes(api)
	directory_routes.SetupCommitteeRoutes(api)
	directory_routes.SetupMetadataRoutes(api)
	log.Println("✅ Directory routes registered")

	// Account routes (Google auth + favorites)
	account_routes.SetupAuthRoutes(api)
	account_routes.SetupUserRoutes(api)
	log.Println("✅ Account routes registered")

	// Admin routes
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness probe
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
