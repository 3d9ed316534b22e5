package member_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// GetDelegation godoc
// @Summary Get a state's delegation
// @Description Get every member for a state, senators first then representatives by last name. Governors appear in the House block unless chamber narrows the result.
// @Tags directory
// @Produce json
// @Param state path string true "Two-letter state code"
// @Param chamber query string false "Restrict to one chamber" Enums(Senate, House, Governor)
// @Success 200 {object} models.ApiResponse{data=[]models.Member}
// @Failure 500 {object} models.ApiResponse
// @Router /legislators/state/{state} [get]
func GetDelegation(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	state := strings.ToUpper(c.Param("state"))

	query := config.DirectoryGorm.WithContext(ctx).Where("state = ?", state)
	if chamber := c.Query("chamber"); chamber != "" {
		query = query.Where("chamber = ?", chamber)
	}

	var members []models.Member
	if err := query.
		Order("CASE WHEN chamber = 'Senate' THEN 0 ELSE 1 END, last_name").
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch delegation"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delegation fetched successfully", members))
}
