package middleware

import (
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

var immutableExtensions = map[string]bool{
	".js":    true,
	".css":   true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".webp":  true,
	".svg":   true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
}

// CacheControl assigne la politique de cache selon le chemin demandé:
// assets immuables, HTML court, API jamais mise en cache
func CacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		switch {
		case strings.HasPrefix(p, "/api/"):
			c.Header("Cache-Control", "no-store")
		case immutableExtensions[path.Ext(p)]:
			c.Header("Cache-Control", "public, max-age=31536000, immutable")
		case p == "/" || strings.HasSuffix(p, ".html"):
			c.Header("Cache-Control", "public, max-age=300")
		}
		c.Next()
	}
}
