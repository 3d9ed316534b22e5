package member_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// GetStats godoc
// @Summary Directory summary statistics
// @Description Totals by chamber, party, gender, and state over every stored row, governors included.
// @Tags directory
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /stats [get]
func GetStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var rows []struct {
		Chamber string
		Party   string
		Gender  string
		State   string
	}
	if err := config.DirectoryGorm.WithContext(ctx).
		Model(&models.Member{}).
		Select("chamber", "party", "gender", "state").
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	stats := models.StatsResponse{
		Total:     len(rows),
		ByChamber: map[string]int{},
		ByParty:   map[string]int{},
		ByGender:  map[string]int{},
		ByState:   map[string]int{},
	}
	for _, row := range rows {
		stats.ByChamber[orUnknown(row.Chamber)]++
		stats.ByParty[orUnknown(row.Party)]++
		stats.ByGender[genderLabel(row.Gender)]++
		stats.ByState[orUnknown(row.State)]++
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats fetched successfully", stats))
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

func genderLabel(gender string) string {
	switch gender {
	case "M":
		return "Male"
	case "F":
		return "Female"
	default:
		return "Unknown"
	}
}
