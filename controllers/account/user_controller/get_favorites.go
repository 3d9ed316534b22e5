package user_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetFavorites godoc
// @Summary Get the user's favorite members
// @Description The authenticated user's favorited bioguide ids plus the hydrated member records in directory order.
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FavoritesResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /me/favorites [get]
func GetFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var favorites []models.Favorite
	if err := config.DirectoryGorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch favorites"))
		return
	}

	ids := make([]string, 0, len(favorites))
	wanted := make(map[string]bool, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.BioguideID)
		wanted[favorite.BioguideID] = true
	}

	// Hydrate from the snapshot so members come back in directory order.
	members := []models.Member{}
	if len(wanted) > 0 {
		snapshot, err := services.LoadSnapshot(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load members"))
			return
		}
		for _, member := range snapshot {
			if wanted[member.BioguideID] {
				members = append(members, member)
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", models.FavoritesResponse{
		BioguideIDs: ids,
		Members:     members,
	}))
}
