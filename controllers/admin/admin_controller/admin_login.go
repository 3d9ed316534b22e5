package admin_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// AdminLogin godoc
// @Summary Login as the operator account
// @Description Authenticate against the env-configured admin (ADMIN_EMAIL + ADMIN_PASSWORD_HASH). Returns a 7-day JWT and sets it as a cookie.
// @Tags Admin
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || passwordHash == "" {
		log.Printf("[admin.login] admin account not configured")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Admin account not configured"))
		return
	}

	// Compare the password even when the email is wrong so both failure
	// modes take the same time.
	passwordErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password))
	if req.Email != adminEmail || passwordErr != nil {
		log.Printf("[admin.login] invalid credentials for: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GenerateAdminJWT(adminEmail)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		token,
		int(services.AdminTokenLifetime.Seconds()),
		"/",
		"",
		false,
		true,
	)

	log.Printf("[admin.login] success: %s", adminEmail)

	response := models.AdminLoginResponse{
		Email:     adminEmail,
		Token:     token,
		ExpiresIn: int(services.AdminTokenLifetime.Seconds()),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", response))
}
