package main

import (
	"log"
	"os"

	"webatelier-backend/db"
	_ "webatelier-backend/docs"
	"webatelier-backend/handlers/admin"
	"webatelier-backend/monitoring"
	"webatelier-backend/routes"

	"github.com/gin-gonic/gin"
)

// @title API Web Atelier
// @version 1.0
// @description API du site vitrine de l'agence Web Atelier: formulaire de contact, newsletter, génération de devis
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	admin.WarnIfDevFallback()

	// L'état de supervision est une valeur injectée, pas un singleton
	monitor := monitoring.New()
	r := routes.SetupRouter(monitor)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
