package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// RemoveFavorite godoc
// @Summary Unfavorite a member
// @Description Removes a member from the authenticated user's favorites. Removing one that was never favorited is a no-op.
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /me/favorites/{bioguideID} [delete]
func RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DirectoryGorm.WithContext(ctx).
		Where("user_id = ? AND bioguide_id = ?", userID, c.Param("bioguideID")).
		Delete(&models.Favorite{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove favorite"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite removed", nil))
}
