package member_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/facet"
	"github.com/ethoz1970/congress-directory/models"
	"github.com/ethoz1970/congress-directory/services"
	"github.com/ethoz1970/congress-directory/utils"
)

// GetMembers godoc
// @Summary List members of Congress
// @Description Filter, sort, and facet-count the directory. Facet params take comma-separated values; unknown values are ignored. Within one facet values OR together, across facets they AND.
// @Tags directory
// @Produce json
// @Param chamber query string false "Comma-separated chambers (Senate,House)"
// @Param state query string false "Comma-separated state codes (CA,TX,...)"
// @Param party query string false "Comma-separated parties (Democrat,Republican,Independent)"
// @Param gender query string false "Comma-separated genders (M,F)"
// @Param years query string false "Comma-separated tenure buckets (0-2,2-6,6-12,12-20,20+)"
// @Param enacted query string false "Comma-separated enacted buckets (none,atLeast1,moreThan5,moreThan10,moreThan25)"
// @Param favorites query bool false "Only the requesting user's favorites"
// @Param sort query string false "Sort key" Enums(name, age, terms, years, enacted, sponsored, ideology, state)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} models.ApiResponse{data=facet.Result}
// @Failure 500 {object} models.ApiResponse
// @Router /legislators [get]
func GetMembers(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		log.Printf("❌ [directory.members] Failed to load snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load members"))
		return
	}

	selection, sortSpec := facet.ParseQuery(c.Request.URL.Query())

	query := facet.Query{
		Selection: selection,
		Sort:      sortSpec,
		Options:   config.EngineOptions(),
	}
	if selection.FavoritesOnly {
		query.Favorites = utils.FavoriteSet(c)
	}

	result := facet.Evaluate(snapshot, query)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Members fetched successfully", result))
}
