package documents

import (
	"bytes"
	"fmt"
	"html/template"
)

// Variante HTML du devis, stylée pour l'impression navigateur
// ("imprimer en PDF"). Mêmes blocs et mêmes coordonnées que le rendu
// PDF, exprimés en millimètres CSS.
var htmlTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Devis {{.Quote.Number}}</title>
<style>
@page { size: A4; margin: 0; }
body { margin: 0; font-family: Helvetica, Arial, sans-serif; color: #000; }
.page { position: relative; width: 210mm; height: 297mm; page-break-after: always; overflow: hidden; }
.block { position: absolute; box-sizing: border-box; }
.header { background: #1C3D5A; color: #fff; padding: 8mm 15mm; }
.header h1 { margin: 0 0 3mm 0; font-size: 22pt; }
.header p { margin: 0 0 1mm 0; font-size: 10pt; }
.info-panel { border: 0.4mm solid #1C3D5A; padding: 3mm; }
.info-panel h2 { margin: 0 0 3mm 0; font-size: 11pt; }
.info-panel p { margin: 0 0 2mm 0; font-size: 10pt; }
.feature-list h2 { margin: 0 0 3mm 0; font-size: 11pt; }
.feature-list li { font-size: 10pt; line-height: 7mm; }
.price-panel { background: #F0F4F8; border: 0.4mm solid #1C3D5A; padding: 3mm; }
.price-panel .label { font-size: 12pt; font-weight: bold; float: left; }
.price-panel .amount { font-size: 16pt; font-weight: bold; float: right; }
.signature h2 { margin: 0 0 3mm 0; font-size: 11pt; }
.signature p { margin: 0 0 4mm 0; font-size: 10pt; }
.footer { border-top: 0.2mm solid #c8c8c8; padding-top: 1mm; color: #787878; font-size: 7pt; }
.footer p { margin: 0; }
</style>
</head>
<body>
{{range .Pages}}<div class="page">
{{range .Blocks}}<div class="block {{.Kind}}" style="left:{{printf "%.1f" .X}}mm;top:{{printf "%.1f" .Y}}mm;width:{{printf "%.1f" .Width}}mm;height:{{printf "%.1f" .Height}}mm;">
{{if eq .Kind "header"}}<h1>{{.Title}}</h1>{{range .Lines}}<p>{{.}}</p>{{end}}
{{else if eq .Kind "info-panel"}}<h2>{{.Title}}</h2>{{range .Lines}}<p>{{.}}</p>{{end}}
{{else if eq .Kind "feature-list"}}<h2>{{.Title}}</h2><ul>{{range .Lines}}<li>{{.}}</li>{{end}}</ul>
{{else if eq .Kind "price-panel"}}<span class="label">{{.Title}}</span>{{range .Lines}}<span class="amount">{{.}}</span>{{end}}
{{else if eq .Kind "signature"}}<h2>{{.Title}}</h2>{{range .Lines}}<p>{{.}}</p>{{end}}
{{else if eq .Kind "footer"}}{{range .Lines}}<p>{{.}}</p>{{end}}
{{end}}</div>
{{end}}</div>
{{end}}</body>
</html>
`))

// RenderHTML produit le devis en document HTML imprimable
func RenderHTML(q Quote) (string, error) {
	data := struct {
		Quote Quote
		Pages []Page
	}{
		Quote: q,
		Pages: Layout(q),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("document generation failed: %w", err)
	}
	return buf.String(), nil
}
