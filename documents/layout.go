// Package documents génère les devis: calcul du prix, mise en page
// déclarative, rendus PDF et HTML. Les deux rendus consomment la même
// liste de blocs, ce qui rend les coordonnées testables comme données.
package documents

import (
	"fmt"
	"time"
)

// Quote contenu d'un devis, jamais persisté
type Quote struct {
	Number      string
	Date        time.Time
	ClientName  string
	ClientEmail string
	ClientPhone string
	Company     string
	PackageType string
	Pages       int
	Features    []string
	Timeline    string
	Total       int
}

type BlockKind string

const (
	BlockHeader      BlockKind = "header"
	BlockInfoPanel   BlockKind = "info-panel"
	BlockFeatureList BlockKind = "feature-list"
	BlockPricePanel  BlockKind = "price-panel"
	BlockSignature   BlockKind = "signature"
	BlockFooter      BlockKind = "footer"
)

// Block un élément positionné en absolu sur une page A4 (mm)
type Block struct {
	Kind   BlockKind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Title  string
	Lines  []string
}

// Page une page A4 du document
type Page struct {
	Blocks []Block
}

// Géométrie A4 en millimètres
const (
	pageWidth     = 210.0
	marginX       = 15.0
	contentWidth  = pageWidth - 2*marginX
	headerHeight  = 35.0
	infoPanelY    = 45.0
	infoPanelH    = 42.0
	featureRowH   = 7.0
	contentBottom = 240.0
	footerY       = 275.0
)

// Layout construit la liste des pages et blocs d'un devis, avec
// pagination automatique quand la liste d'options déborde
func Layout(q Quote) []Page {
	var pages []Page

	first := Page{}
	first.Blocks = append(first.Blocks, Block{
		Kind:   BlockHeader,
		X:      0,
		Y:      0,
		Width:  pageWidth,
		Height: headerHeight,
		Title:  "DEVIS",
		Lines: []string{
			"Web Atelier - Agence de création web",
			fmt.Sprintf("Devis n° %s", q.Number),
			fmt.Sprintf("Date : %s", q.Date.Format("02/01/2006")),
		},
	})

	clientLines := []string{q.ClientName}
	if q.Company != "" {
		clientLines = append(clientLines, q.Company)
	}
	clientLines = append(clientLines, q.ClientEmail)
	if q.ClientPhone != "" {
		clientLines = append(clientLines, q.ClientPhone)
	}
	first.Blocks = append(first.Blocks, Block{
		Kind:   BlockInfoPanel,
		X:      marginX,
		Y:      infoPanelY,
		Width:  contentWidth/2 - 5,
		Height: infoPanelH,
		Title:  "Client",
		Lines:  clientLines,
	})

	detailLines := []string{
		fmt.Sprintf("Forfait : %s", PackageLabel(q.PackageType)),
		fmt.Sprintf("Pages : %d", q.Pages),
	}
	if q.Timeline != "" {
		detailLines = append(detailLines, fmt.Sprintf("Délai : %s", q.Timeline))
	}
	detailLines = append(detailLines, "Validité du devis : 30 jours")
	first.Blocks = append(first.Blocks, Block{
		Kind:   BlockInfoPanel,
		X:      marginX + contentWidth/2 + 5,
		Y:      infoPanelY,
		Width:  contentWidth/2 - 5,
		Height: infoPanelH,
		Title:  "Détails du projet",
		Lines:  detailLines,
	})

	pages = append(pages, first)
	cursor := infoPanelY + infoPanelH + 10

	featureLines := []string{fmt.Sprintf("Forfait %s", PackageLabel(q.PackageType))}
	for _, f := range q.Features {
		featureLines = append(featureLines, f)
	}

	// Liste des prestations, découpée page par page
	remaining := featureLines
	for len(remaining) > 0 {
		available := int((contentBottom - cursor - 10) / featureRowH)
		if available < 1 {
			pages = append(pages, Page{})
			cursor = 25
			continue
		}

		chunk := remaining
		if len(chunk) > available {
			chunk = remaining[:available]
		}
		height := float64(len(chunk))*featureRowH + 12
		page := &pages[len(pages)-1]
		page.Blocks = append(page.Blocks, Block{
			Kind:   BlockFeatureList,
			X:      marginX,
			Y:      cursor,
			Width:  contentWidth,
			Height: height,
			Title:  "Prestations incluses",
			Lines:  chunk,
		})
		cursor += height + 8
		remaining = remaining[len(chunk):]

		if len(remaining) > 0 {
			pages = append(pages, Page{})
			cursor = 25
		}
	}

	// Panneau prix, signature et pied de page sur la dernière page,
	// reportés sur une page neuve si la place manque
	if cursor+60 > contentBottom {
		pages = append(pages, Page{})
		cursor = 25
	}
	last := &pages[len(pages)-1]

	last.Blocks = append(last.Blocks, Block{
		Kind:   BlockPricePanel,
		X:      marginX,
		Y:      cursor,
		Width:  contentWidth,
		Height: 20,
		Title:  "Total",
		Lines:  []string{fmt.Sprintf("%d €", q.Total)},
	})
	cursor += 28

	last.Blocks = append(last.Blocks, Block{
		Kind:   BlockSignature,
		X:      marginX,
		Y:      cursor,
		Width:  contentWidth,
		Height: 30,
		Title:  "Bon pour accord",
		Lines: []string{
			"Date :",
			"Signature :",
		},
	})

	footer := Block{
		Kind:   BlockFooter,
		X:      marginX,
		Y:      footerY,
		Width:  contentWidth,
		Height: 15,
		Lines: []string{
			"Web Atelier - SARL au capital de 10 000 € - SIRET 123 456 789 00012",
			"contact.webatelier@gmail.com - TVA non applicable, art. 293 B du CGI",
		},
	}
	for i := range pages {
		pages[i].Blocks = append(pages[i].Blocks, footer)
	}

	return pages
}
