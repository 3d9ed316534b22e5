package auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// createOrUpdateUser upserts the Google account into the users table.
// Lookup is by google_id first so an email change on the Google side keeps
// the same directory account (and its favorites); a legacy row matched by
// email gets the Google account linked.
func createOrUpdateUser(
	c *gin.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.User, error) {
	db := config.DirectoryGorm.WithContext(c.Request.Context())

	var user models.User
	result := db.Where("google_id = ?", googleID).First(&user)
	if result.Error == gorm.ErrRecordNotFound {
		result = db.Where("email = ?", googleUser.Email).First(&user)
	}

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google login, create user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
				Status:        "active",
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"email":          googleUser.Email,
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}

	// Attach Google account if not already linked
	if user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Email = googleUser.Email
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
