package documents

// Grille tarifaire des forfaits. Tous les montants sont en euros entiers.
type packageRate struct {
	Base          int
	IncludedPages int
}

var packageRates = map[string]packageRate{
	"vitrine":   {Base: 1200, IncludedPages: 5},
	"premium":   {Base: 2800, IncludedPages: 10},
	"ecommerce": {Base: 4500, IncludedPages: 15},
	"custom":    {Base: 900, IncludedPages: 3},
}

var packageLabels = map[string]string{
	"vitrine":   "Site vitrine",
	"premium":   "Site premium",
	"ecommerce": "Site e-commerce",
	"custom":    "Projet sur mesure",
}

const extraPagePrice = 120

var featurePrices = map[string]int{
	"blog":        350,
	"seo":         450,
	"multilingue": 600,
	"reservation": 750,
	"paiement":    900,
	"cms":         500,
	"maintenance": 400,
	"newsletter":  250,
}

// Prix par défaut d'une option absente de la grille
const defaultFeaturePrice = 150

// ComputePrice calcule le total d'un devis: base du forfait, pages
// au-delà du quota inclus, puis somme des options
func ComputePrice(packageType string, pages int, features []string) int {
	rate, ok := packageRates[packageType]
	if !ok {
		rate = packageRates["custom"]
	}

	total := rate.Base
	if pages > rate.IncludedPages {
		total += (pages - rate.IncludedPages) * extraPagePrice
	}
	for _, f := range features {
		if price, ok := featurePrices[f]; ok {
			total += price
		} else {
			total += defaultFeaturePrice
		}
	}
	return total
}

// PackageLabel retourne le libellé français d'un forfait
func PackageLabel(packageType string) string {
	if label, ok := packageLabels[packageType]; ok {
		return label
	}
	return packageLabels["custom"]
}
