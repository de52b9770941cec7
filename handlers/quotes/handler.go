package quotes

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
	"webatelier-backend/documents"
	"webatelier-backend/models"
	"webatelier-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateQuoteNumber construit un numéro de devis DEV-AAAAMMJJ-XXXXXX
func GenerateQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("DEV-%s-%s", now.Format("20060102"), suffix)
}

// @Summary Generate a price quote
// @Description Build a PDF (base64 JSON) or printable HTML quote from the selected package and options
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body models.QuoteRequest true "Quote request"
// @Success 200 {object} models.QuoteResponse
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 500 {object} map[string]interface{} "error: Document generation failed"
// @Router /api/generate-quote [post]
func GenerateQuote(c *gin.Context) {
	var input models.QuoteRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if !utils.ValidateEmail(input.ClientEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if input.ClientPhone != "" && !utils.ValidateFrenchPhone(input.ClientPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone format, French number expected"})
		return
	}

	pages := input.Pages
	if pages == 0 {
		pages = 1
	}

	now := time.Now()
	quote := documents.Quote{
		Number:      GenerateQuoteNumber(now),
		Date:        now.Truncate(24 * time.Hour),
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Company:     input.Company,
		PackageType: input.PackageType,
		Pages:       pages,
		Features:    input.Features,
		Timeline:    input.Timeline,
		Total:       documents.ComputePrice(input.PackageType, pages, input.Features),
	}

	if input.Format == "html" {
		html, err := documents.RenderHTML(quote)
		if err != nil {
			utils.LogError(err, "HTML quote rendering failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Document generation failed"})
			return
		}
		c.Header("X-Quote-Number", quote.Number)
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	pdfBytes, err := documents.RenderPDF(quote)
	if err != nil {
		utils.LogError(err, "PDF quote rendering failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document generation failed"})
		return
	}

	c.JSON(http.StatusOK, models.QuoteResponse{
		Success:     true,
		QuoteNumber: quote.Number,
		TotalPrice:  quote.Total,
		PDFBase64:   base64.StdEncoding.EncodeToString(pdfBytes),
	})
}
