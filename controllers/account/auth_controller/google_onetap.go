package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/utils"
)

// GoogleOneTap godoc
// @Summary Sign in with a Google One Tap credential
// @Description Verifies the ID token the One Tap prompt hands the frontend, upserts the user, and answers with the session. The same auth cookie is set as in the redirect flow.
// @Tags Auth - Google OAuth
// @Accept json
// @Produce json
// @Param request body models.OneTapRequest true "One Tap credential"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/google/onetap [post]
func GoogleOneTap(c *gin.Context) {
	var req models.OneTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Credential is required"))
		return
	}

	idToken, err := config.OIDCVerifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		log.Printf("❌ One Tap credential rejected: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}

	var claims struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("❌ One Tap claims decode failed: %v", err)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid Google credential"))
		return
	}
	if claims.Sub == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Google ID not found"))
		return
	}

	googleUser := &models.GoogleUserInfo{
		Sub:           claims.Sub,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}

	user, err := createOrUpdateUser(c, googleUser, claims.Sub, claims.EmailVerified)
	if err != nil {
		log.Printf("❌ DB error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save user"))
		return
	}

	if err := utils.LogLoginEvent(c, user.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	token, err := issueSession(c, user)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}

	log.Printf("✅ One Tap login successful: %s", user.Email)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Signed in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
