package utils

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// FavoriteSet resolves the requesting user's favorite bioguide ids.
// Anonymous requests and lookup failures both degrade to the empty set:
// favorites=true without a session matches nothing, it never errors.
func FavoriteSet(c *gin.Context) map[string]bool {
	claims := OptionalUser(c)
	if claims == nil {
		return map[string]bool{}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var ids []string
	if err := config.DirectoryGorm.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", claims.UserID).
		Pluck("bioguide_id", &ids).Error; err != nil {
		log.Printf("⚠️ [utils.favorites] Failed to load favorites for %s: %v", claims.UserID, err)
		return map[string]bool{}
	}

	favorites := make(map[string]bool, len(ids))
	for _, id := range ids {
		favorites[id] = true
	}
	return favorites
}
