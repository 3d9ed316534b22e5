package filter_controller

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

// GetFilterMetadata godoc
// @Summary Get facet sidebar metadata
// @Description Returns every facet with its ordered values, display labels, and the count each value would have under the current selection. Takes the same query params as /legislators.
// @Tags directory
// @Produce json
// @Param chamber query string false "Comma-separated chambers (Senate,House)"
// @Param state query string false "Comma-separated state codes"
// @Param party query string false "Comma-separated parties"
// @Param gender query string false "Comma-separated genders (M,F)"
// @Param years query string false "Comma-separated tenure buckets"
// @Param enacted query string false "Comma-separated enacted buckets"
// @Param favorites query bool false "Only the requesting user's favorites"
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	snapshot, err := services.LoadSnapshot(ctx)
	if err != nil {
		log.Printf("❌ [directory.filters] Failed to load snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load filter metadata"))
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

	metadata := models.FilterMetadata{
		Facets:   make([]models.FacetBlock, 0, len(facet.Keys)),
		Filtered: result.Filtered,
		Total:    result.Total,
	}
	for _, def := range facet.Definitions() {
		block := models.FacetBlock{
			Key:    string(def.Key),
			Label:  def.Label,
			Values: make([]models.FacetValue, 0, len(def.Values)),
		}
		counts := result.Counts[def.Key]
		for _, value := range def.Values {
			block.Values = append(block.Values, models.FacetValue{
				Value: value.Token,
				Label: value.Label,
				Count: counts[value.Token],
			})
		}
		metadata.Facets = append(metadata.Facets, block)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
