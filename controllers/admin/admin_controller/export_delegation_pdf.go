package admin_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/ethoz1970/congress-directory/config"
	"github.com/ethoz1970/congress-directory/models"
)

// ExportDelegationPDF godoc
// @Summary Export a state's delegation as PDF
// @Description Generates a printable roster of a state's senators, representatives, and governor.
// @Tags Admin
// @Security BearerAuth
// @Produce application/pdf
// @Param state path string true "Two-letter state code"
// @Success 200 {file} binary "PDF roster"
// @Failure 404 {object} models.ApiResponse "No members for state"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/export/delegation/{state} [get]
func ExportDelegationPDF(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	state := strings.ToUpper(c.Param("state"))

	var members []models.Member
	if err := config.DirectoryGorm.WithContext(ctx).
		Where("state = ?", state).
		Order("CASE WHEN chamber = 'Senate' THEN 0 WHEN chamber = 'House' THEN 1 ELSE 2 END, last_name").
		Find(&members).Error; err != nil {
		log.Printf("[admin.export] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if len(members) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No members found for state"))
		return
	}

	pdfBuffer := generateDelegationPDF(state, members)

	// Set response headers for file download
	filename := fmt.Sprintf("delegation-%s.pdf", state)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, filename, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.export] delegation PDF generated for %s (%d members)", state, len(members))
}

// generateDelegationPDF builds the roster document in memory.
func generateDelegationPDF(state string, members []models.Member) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Colors
	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	// Title
	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("CONGRESSIONAL DELEGATION — %s", state), props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%d members · generated %s", len(members), time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(6, func() {
		m.Col(5, func() {
			m.Text("Name", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Chamber", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Party", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Seat", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	for i := range members {
		member := &members[i]
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(member.FullName, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(member.Chamber, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(member.Party, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(seatLabel(member), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
		})
	}

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Data: unitedstates project / congress.gov", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	// Output to buffer
	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.export] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}

// seatLabel renders the seat column: district for representatives, rank
// for senators.
func seatLabel(member *models.Member) string {
	switch member.Chamber {
	case "House":
		if member.District != nil {
			return fmt.Sprintf("District %d", *member.District)
		}
		return "At large"
	case "Senate":
		if rank := member.StateRank; rank != nil && *rank != "" {
			return strings.ToUpper((*rank)[:1]) + (*rank)[1:] + " senator"
		}
		return "Senator"
	default:
		return member.Chamber
	}
}
