package models

// QuoteRequest modèle pour générer un devis
// @Description modèle de demande de génération de devis, jamais persisté
type QuoteRequest struct {
	ClientName  string   `json:"clientName" binding:"required,min=2" example:"Jean Dupont"`
	ClientEmail string   `json:"clientEmail" binding:"required,email" example:"jean.dupont@exemple.fr"`
	ClientPhone string   `json:"clientPhone" example:"06 12 34 56 78"`
	Company     string   `json:"company" example:"Dupont SARL"`
	PackageType string   `json:"packageType" binding:"required,oneof=vitrine premium ecommerce custom" example:"vitrine"`
	Pages       int      `json:"pages" binding:"omitempty,min=1,max=200" example:"5"`
	Features    []string `json:"features" example:"blog,seo"`
	Timeline    string   `json:"timeline" example:"4 à 6 semaines"`
	Format      string   `json:"format" binding:"omitempty,oneof=pdf html" example:"pdf"`
}

// QuoteResponse réponse JSON pour le format PDF
type QuoteResponse struct {
	Success     bool   `json:"success"`
	QuoteNumber string `json:"quoteNumber"`
	TotalPrice  int    `json:"totalPrice"`
	PDFBase64   string `json:"pdfBase64,omitempty"`
}
