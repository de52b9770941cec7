package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderPDF produit le devis en PDF A4. La date de création du document
// est fixée à la date du devis pour que deux rendus d'une même entrée
// soient identiques octet pour octet.
func RenderPDF(q Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(q.Date)
	pdf.SetModificationDate(q.Date)
	pdf.SetTitle(fmt.Sprintf("Devis %s", q.Number), true)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range Layout(q) {
		pdf.AddPage()
		for _, block := range page.Blocks {
			drawBlock(pdf, tr, block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document generation failed: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlock(pdf *fpdf.Fpdf, tr func(string) string, block Block) {
	switch block.Kind {
	case BlockHeader:
		pdf.SetFillColor(28, 61, 90)
		pdf.Rect(block.X, block.Y, block.Width, block.Height, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 22)
		pdf.Text(marginX, block.Y+14, tr(block.Title))
		pdf.SetFont("Helvetica", "", 10)
		for i, line := range block.Lines {
			pdf.Text(marginX, block.Y+21+float64(i)*5, tr(line))
		}
		pdf.SetTextColor(0, 0, 0)

	case BlockInfoPanel:
		pdf.SetDrawColor(28, 61, 90)
		pdf.Rect(block.X, block.Y, block.Width, block.Height, "D")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(block.X+4, block.Y+7, tr(block.Title))
		pdf.SetFont("Helvetica", "", 10)
		for i, line := range block.Lines {
			pdf.Text(block.X+4, block.Y+14+float64(i)*6, tr(line))
		}

	case BlockFeatureList:
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(block.X, block.Y+6, tr(block.Title))
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetFillColor(28, 61, 90)
		for i, line := range block.Lines {
			y := block.Y + 12 + float64(i)*featureRowH
			pdf.Circle(block.X+2, y-1.2, 1, "F")
			pdf.Text(block.X+6, y, tr(line))
		}

	case BlockPricePanel:
		pdf.SetFillColor(240, 244, 248)
		pdf.SetDrawColor(28, 61, 90)
		pdf.Rect(block.X, block.Y, block.Width, block.Height, "FD")
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(block.X+4, block.Y+12, tr(block.Title))
		pdf.SetFont("Helvetica", "B", 16)
		for _, line := range block.Lines {
			pdf.Text(block.X+block.Width-4-pdf.GetStringWidth(tr(line)), block.Y+12.5, tr(line))
		}

	case BlockSignature:
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(block.X, block.Y+6, tr(block.Title))
		pdf.SetFont("Helvetica", "", 10)
		for i, line := range block.Lines {
			pdf.Text(block.X, block.Y+14+float64(i)*8, tr(line))
		}
		pdf.SetDrawColor(150, 150, 150)
		pdf.Line(block.X+30, block.Y+28, block.X+block.Width/2, block.Y+28)

	case BlockFooter:
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(block.X, block.Y-2, block.X+block.Width, block.Y-2)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(120, 120, 120)
		for i, line := range block.Lines {
			pdf.Text(block.X, block.Y+3+float64(i)*4, tr(line))
		}
		pdf.SetTextColor(0, 0, 0)
	}
}
