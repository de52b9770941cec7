package routes

import (
	"webatelier-backend/handlers/seo"

	"github.com/gin-gonic/gin"
)

func SeoRoutes(r *gin.Engine) {
	r.GET("/sitemap.xml", seo.Sitemap)
	r.GET("/robots.txt", seo.Robots)
}
