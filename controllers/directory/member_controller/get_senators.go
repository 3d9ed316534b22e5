package member_controller

import (
	"github.com/gin-gonic/gin"
)

// GetSenators godoc
// @Summary List senators (legacy)
// @Description Legacy alias for /legislators with the chamber pinned to Senate. Other facet params still apply.
// @Tags directory
// @Produce json
// @Param state query string false "Comma-separated state codes"
// @Param party query string false "Comma-separated parties"
// @Success 200 {object} models.ApiResponse{data=facet.Result}
// @Failure 500 {object} models.ApiResponse
// @Router /senators [get]
func GetSenators(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("chamber", "Senate")
	c.Request.URL.RawQuery = q.Encode()

	GetMembers(c)
}
