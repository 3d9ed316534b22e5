package committee_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetCommittees godoc
// @Summary List committees
// @Description All congressional committees in name order, optionally narrowed by type.
// @Tags committees
// @Produce json
// @Param type query string false "Committee type" Enums(house, senate, joint)
// @Success 200 {object} models.ApiResponse{data=[]models.Committee}
// @Failure 500 {object} models.ApiResponse
// @Router /committees [get]
func GetCommittees(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	committees, err := services.LoadCommittees(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch committees"))
		return
	}

	if committeeType := strings.ToLower(c.Query("type")); committeeType != "" {
		filtered := make([]models.Committee, 0, len(committees))
		for _, committee := range committees {
			if committee.Type == committeeType {
				filtered = append(filtered, committee)
			}
		}
		committees = filtered
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Committees fetched successfully", committees))
}
