package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/ethoz1970/congress-directory/utils"
)

// AdminAuthMiddleware validates the admin JWT. The admin surface is a
// single env-configured operator account (ADMIN_EMAIL), so beyond the
// signature check we only confirm the token still names that account.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie first, then Authorization header
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}
		}

		// Validate and parse JWT
		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		// The configured admin can change between deploys; tokens minted
		// for a previous address stop working.
		adminEmail := os.Getenv("ADMIN_EMAIL")
		if adminEmail == "" || claims.Email != adminEmail {
			log.Printf("[auth] admin token for unknown account: %s", claims.Email)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - admin not found"))
			c.Abort()
			return
		}

		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}
