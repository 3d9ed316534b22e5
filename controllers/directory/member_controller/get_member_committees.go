package member_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetMemberCommittees godoc
// @Summary Get a member's committee assignments
// @Description Get the committees and subcommittees a member serves on, in stored display order.
// @Tags directory
// @Produce json
// @Param bioguideID path string true "Bioguide ID"
// @Success 200 {object} models.ApiResponse{data=models.MemberCommitteesResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /legislators/{bioguideID}/committees [get]
func GetMemberCommittees(c *gin.Context) {
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

	membership, err := services.GetCommitteeMembership(ctx, bioguideID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch committee assignments"))
		return
	}

	response := models.MemberCommitteesResponse{
		BioguideID:    bioguideID,
		Committees:    []models.CommitteeAssignment{},
		Subcommittees: []models.CommitteeAssignment{},
	}
	if membership != nil {
		for _, assignment := range membership.Committees {
			if assignment.IsSubcommittee {
				response.Subcommittees = append(response.Subcommittees, assignment)
			} else {
				response.Committees = append(response.Committees, assignment)
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Committee assignments fetched successfully", response))
}
