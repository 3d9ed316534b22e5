package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// AddFavorite godoc
// @Summary Favorite a member
// @Description Adds a member to the authenticated user's favorites. Re-adding an existing favorite is a no-op.
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /me/favorites/{bioguideID} [post]
func AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	bioguideID := c.Param("bioguideID")

	member, err := services.GetMember(ctx, bioguideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch member"))
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Legislator not found"))
		return
	}

	var existing models.Favorite
	err = config.DirectoryGorm.WithContext(ctx).
		Where("user_id = ? AND bioguide_id = ?", userID, bioguideID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Already favorited", nil))
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save favorite"))
		return
	}

	favorite := models.Favorite{
		UserID:     userID,
		BioguideID: bioguideID,
	}
	if err := config.DirectoryGorm.WithContext(ctx).Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save favorite"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorite added", nil))
}
