package member_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetMemberByID godoc
// @Summary Get a single member
// @Description Get one member by bioguide id. Governors (GOV-XX ids) resolve here too.
// @Tags directory
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse{data=models.Member}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /legislators/{bioguideID} [get]
func GetMemberByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	member, err := services.GetMember(ctx, c.Param("bioguideID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch member"))
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Legislator not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Member fetched successfully", member))
}
