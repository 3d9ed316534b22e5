package committee_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// GetCommitteeByID godoc
// @Summary Get a single committee
// @Description Get one committee by thomas id (e.g. HSAG, SSJU), subcommittees included.
// @Tags committees
// @Produce json
// @Param committeeID path string true "Committee thomas ID"
// @Success 200 {object} models.ApiResponse{data=models.Committee}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /committees/{committeeID} [get]
func GetCommitteeByID(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var committee models.Committee
	if err := config.DirectoryGorm.WithContext(ctx).
		First(&committee, "thomas_id = ?", c.Param("committeeID")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Committee not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch committee"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Committee fetched successfully", committee))
}
