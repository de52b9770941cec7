package documents

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleQuote() Quote {
	return Quote{
		Number:      "DEV-20250314-A1B2C3",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		ClientName:  "Jean Dupont",
		ClientEmail: "jean@test.fr",
		ClientPhone: "06 12 34 56 78",
		Company:     "Dupont SARL",
		PackageType: "vitrine",
		Pages:       5,
		Features:    []string{"blog", "seo"},
		Timeline:    "4 à 6 semaines",
		Total:       2000,
	}
}

func TestComputePrice(t *testing.T) {
	// Base du forfait seule
	assert.Equal(t, 1200, ComputePrice("vitrine", 5, nil))
	// Pages au-delà du quota inclus
	assert.Equal(t, 2800+2*120, ComputePrice("premium", 12, nil))
	// Options tarifées
	assert.Equal(t, 1200+350+450, ComputePrice("vitrine", 3, []string{"blog", "seo"}))
	// Option inconnue au tarif par défaut
	assert.Equal(t, 1200+150, ComputePrice("vitrine", 1, []string{"visite-virtuelle"}))
	// Forfait inconnu traité comme sur mesure
	assert.Equal(t, 900, ComputePrice("platine", 1, nil))
}

func TestComputePrice_AlwaysWholeEuros(t *testing.T) {
	total := ComputePrice("ecommerce", 20, []string{"paiement", "multilingue"})
	rendered := fmt.Sprintf("%d €", total)
	assert.NotContains(t, rendered, ".")
	assert.NotContains(t, rendered, ",")
}

func TestLayout_SinglePage(t *testing.T) {
	pages := Layout(sampleQuote())

	assert.Len(t, pages, 1)

	kinds := make(map[BlockKind]int)
	for _, b := range pages[0].Blocks {
		kinds[b.Kind]++
	}
	assert.Equal(t, 1, kinds[BlockHeader])
	assert.Equal(t, 2, kinds[BlockInfoPanel])
	assert.Equal(t, 1, kinds[BlockFeatureList])
	assert.Equal(t, 1, kinds[BlockPricePanel])
	assert.Equal(t, 1, kinds[BlockSignature])
	assert.Equal(t, 1, kinds[BlockFooter])
}

func TestLayout_PaginatesLongFeatureList(t *testing.T) {
	q := sampleQuote()
	for i := 0; i < 60; i++ {
		q.Features = append(q.Features, fmt.Sprintf("option-%d", i))
	}

	pages := Layout(q)
	assert.Greater(t, len(pages), 1)

	// Chaque page porte le pied de page légal
	for _, page := range pages {
		found := false
		for _, b := range page.Blocks {
			if b.Kind == BlockFooter {
				found = true
			}
		}
		assert.True(t, found)
	}

	// Le prix et la signature sont sur la dernière page
	last := pages[len(pages)-1]
	var hasPrice, hasSignature bool
	for _, b := range last.Blocks {
		if b.Kind == BlockPricePanel {
			hasPrice = true
		}
		if b.Kind == BlockSignature {
			hasSignature = true
		}
	}
	assert.True(t, hasPrice)
	assert.True(t, hasSignature)
}

func TestLayout_BlocksStayOnCanvas(t *testing.T) {
	q := sampleQuote()
	for i := 0; i < 40; i++ {
		q.Features = append(q.Features, fmt.Sprintf("option-%d", i))
	}

	for _, page := range Layout(q) {
		for _, b := range page.Blocks {
			assert.GreaterOrEqual(t, b.X, 0.0)
			assert.GreaterOrEqual(t, b.Y, 0.0)
			assert.LessOrEqual(t, b.X+b.Width, pageWidth)
		}
	}
}

func TestRenderPDF_Deterministic(t *testing.T) {
	q := sampleQuote()

	first, err := RenderPDF(q)
	assert.NoError(t, err)
	second, err := RenderPDF(q)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(string(first), "%PDF"))
}

func TestRenderHTML_Deterministic(t *testing.T) {
	q := sampleQuote()

	first, err := RenderHTML(q)
	assert.NoError(t, err)
	second, err := RenderHTML(q)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTML_Sections(t *testing.T) {
	html, err := RenderHTML(sampleQuote())
	assert.NoError(t, err)

	assert.Contains(t, html, "DEV-20250314-A1B2C3")
	assert.Contains(t, html, "Jean Dupont")
	assert.Contains(t, html, "Site vitrine")
	assert.Contains(t, html, "Prestations incluses")
	assert.Contains(t, html, "2000 €")
	assert.Contains(t, html, "Bon pour accord")
	assert.Contains(t, html, "293 B du CGI")
}

func TestPackageLabel(t *testing.T) {
	assert.Equal(t, "Site e-commerce", PackageLabel("ecommerce"))
	assert.Equal(t, "Projet sur mesure", PackageLabel("inconnu"))
}
