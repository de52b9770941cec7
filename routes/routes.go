package routes

import (
	"os"
	"strings"
	"time"

	"webatelier-backend/handlers/uploads"
	"webatelier-backend/middleware"
	"webatelier-backend/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		raw = "http://localhost:3000,http://localhost:5173"
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func SetupRouter(m *monitoring.Monitor) *gin.Engine {

	r := gin.Default()
	r.MaxMultipartMemory = uploads.MaxUploadSize

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Quote-Number"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Chaîne transverse: limitation générale, nettoyage des entrées,
	// politique de cache, mesure des temps de réponse, capture d'erreurs
	generalLimiter := middleware.NewRateLimiter(100, 15*time.Minute, "Too many requests, please try again later")
	r.Use(generalLimiter.Middleware())
	r.Use(middleware.Sanitize())
	r.Use(middleware.CacheControl())
	r.Use(middleware.ResponseTime(m))
	r.Use(middleware.ErrorCapture(m))

	// Limite renforcée, partagée par les routes de formulaire
	formLimiter := middleware.NewRateLimiter(5, 5*time.Minute, "Too many submissions, please try again later")

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ContactsRoutes(r, formLimiter)
	NewsletterRoutes(r, formLimiter)
	QuotesRoutes(r, formLimiter)
	UploadsRoutes(r, formLimiter)
	AdminRoutes(r, m)
	HealthRoutes(r, m)
	SeoRoutes(r)

	return r
}
