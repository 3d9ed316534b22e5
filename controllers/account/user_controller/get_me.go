// ════════════════════════════════════════════════════════════
// Path: controllers/account/user_controller/get_me.go
// Get authenticated user's profile
// ════════════════════════════════════════════════════════════

package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/middleware"
	"github.com/ethoz1970/congress-directory/models"
)

// GetMe godoc
// @Summary Get current user
// @Description Get the authenticated user's profile.
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /me [get]
func GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DirectoryGorm.WithContext(ctx).
		Where("id = ? AND status = ?", userID, "active").
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched", user.ToResponse()))
}

// currentUserID pulls the UUID the auth middleware stored in the context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
