package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Bonjour", SanitizeString("Bonjour<script>alert(1)</script>"))
	assert.Equal(t, "alert(1)", SanitizeString("javascript:alert(1)"))
	assert.Equal(t, "<a href=\"#\">lien</a>", SanitizeString("<a href=\"#\" onclick=\"steal()\">lien</a>"))
	// Le texte bénin est rendu octet pour octet
	assert.Equal(t, "R&D <3 café — 50% de remise", SanitizeString("R&D <3 café — 50% de remise"))
}

func TestSanitizeString_Idempotent(t *testing.T) {
	input := "Bonjour<script>alert(1)</script> javascript:x"
	once := SanitizeString(input)
	assert.Equal(t, once, SanitizeString(once))
}

func TestSanitizeValue_PureTransform(t *testing.T) {
	original := map[string]interface{}{
		"message": "coucou<script>alert(1)</script>",
		"nested":  []interface{}{"javascript:void(0)", "propre"},
	}

	clean := SanitizeValue(original).(map[string]interface{})

	assert.Equal(t, "coucou", clean["message"])
	assert.Equal(t, []interface{}{"void(0)", "propre"}, clean["nested"])
	// L'entrée n'est pas mutée
	assert.Equal(t, "coucou<script>alert(1)</script>", original["message"])
}

func TestSanitizeMiddleware_RewritesBody(t *testing.T) {
	r := gin.New()
	r.Use(Sanitize())

	var received map[string]interface{}
	r.POST("/api/contact", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		json.Unmarshal(body, &received)
		c.Status(http.StatusOK)
	})

	payload, _ := json.Marshal(map[string]string{
		"name":    "Jean<script>alert(1)</script>",
		"message": "Bonjour, je souhaite un devis pour mon site.",
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Jean", received["name"])
	assert.Equal(t, "Bonjour, je souhaite un devis pour mon site.", received["message"])
}

func TestSanitizeMiddleware_RewritesQuery(t *testing.T) {
	r := gin.New()
	r.Use(Sanitize())

	var got string
	r.GET("/api/search", func(c *gin.Context) {
		got = c.Query("q")
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/search?q=javascript:alert(1)", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "alert(1)", got)
}
