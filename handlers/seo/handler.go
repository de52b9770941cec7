package seo

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Pages publiques du site, dans l'ordre du menu
var sitePages = []string{
	"",
	"services",
	"portfolio",
	"blog",
	"contact",
	"mentions-legales",
}

func siteURL() string {
	url := os.Getenv("SITE_URL")
	if url == "" {
		url = "http://localhost:8080"
	}
	return strings.TrimRight(url, "/")
}

// @Summary Sitemap
// @Description XML sitemap of the public pages
// @Tags seo
// @Produce xml
// @Success 200 {string} string "sitemap"
// @Router /sitemap.xml [get]
func Sitemap(c *gin.Context) {
	base := siteURL()
	lastMod := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, page := range sitePages {
		loc := base + "/"
		if page != "" {
			loc = base + "/" + page
		}
		b.WriteString(fmt.Sprintf("  <url><loc>%s</loc><lastmod>%s</lastmod></url>\n", loc, lastMod))
	}
	b.WriteString("</urlset>\n")

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(b.String()))
}

// @Summary Robots
// @Description robots.txt pointing crawlers at the sitemap
// @Tags seo
// @Produce plain
// @Success 200 {string} string "robots"
// @Router /robots.txt [get]
func Robots(c *gin.Context) {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", siteURL())
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
