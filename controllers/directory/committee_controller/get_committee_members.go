package committee_controller

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
)

// GetCommitteeMembers godoc
// @Summary Get a committee's roster
// @Description Every member serving on the committee (or one of its subcommittees' parent seat), hydrated with the member record and ordered by rank. Members without a rank sort last.
// @Tags committees
// @Produce json
// @Param committeeID path string true "Committee thomas ID"
// @Success 200 {object} models.ApiResponse{data=[]models.CommitteeMemberEntry}
// @Failure 500 {object} models.ApiResponse
// @Router /committees/{committeeID}/members [get]
func GetCommitteeMembers(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	committeeID := c.Param("committeeID")

	var memberships []models.CommitteeMembership
	if err := config.DirectoryGorm.WithContext(ctx).Find(&memberships).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch committee roster"))
		return
	}

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load members"))
		return
	}
	byID := make(map[string]*models.Member, len(snapshot))
	for i := range snapshot {
		byID[snapshot[i].BioguideID] = &snapshot[i]
	}

	entries := make([]models.CommitteeMemberEntry, 0)
	for _, membership := range memberships {
		for _, assignment := range membership.Committees {
			if assignment.CommitteeID != committeeID {
				continue
			}
			member, ok := byID[membership.BioguideID]
			if ok {
				entries = append(entries, models.CommitteeMemberEntry{
					BioguideID: membership.BioguideID,
					Legislator: *member,
					Rank:       assignment.Rank,
					Title:      assignment.Title,
					Party:      assignment.Party,
				})
			}
			break
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return rankOr999(entries[i].Rank) < rankOr999(entries[j].Rank)
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Committee roster fetched successfully", entries))
}

func rankOr999(rank *int) int {
	if rank == nil {
		return 999
	}
	return *rank
}
