package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	scriptTagRegex    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>|<script[^>]*/?>`)
	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\son\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
)

// SanitizeString supprime les balises script, les URI javascript: et les
// attributs de gestionnaires d'événements. Le reste du texte est rendu
// tel quel, octet pour octet.
func SanitizeString(s string) string {
	s = scriptTagRegex.ReplaceAllString(s, "")
	s = jsProtocolRegex.ReplaceAllString(s, "")
	s = eventHandlerRegex.ReplaceAllString(s, "")
	return s
}

// SanitizeValue retourne une copie nettoyée d'une valeur JSON décodée,
// sans modifier l'entrée
func SanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return SanitizeString(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = SanitizeValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = SanitizeValue(item)
		}
		return out
	default:
		return v
	}
}

// Sanitize remplace le corps JSON et la query string par une version
// nettoyée avant que les handlers ne les lisent
func Sanitize() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.RawQuery != "" {
			c.Request.URL.RawQuery = sanitizeQuery(c.Request.URL.Query())
		}

		if c.Request.Body != nil && strings.Contains(c.ContentType(), "application/json") {
			raw, err := io.ReadAll(c.Request.Body)
			if err == nil && len(raw) > 0 {
				var decoded interface{}
				if json.Unmarshal(raw, &decoded) == nil {
					if clean, err := json.Marshal(SanitizeValue(decoded)); err == nil {
						raw = clean
					}
				}
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
		}

		c.Next()
	}
}

func sanitizeQuery(values url.Values) string {
	clean := url.Values{}
	for key, list := range values {
		for _, v := range list {
			clean.Add(key, SanitizeString(v))
		}
	}
	return clean.Encode()
}
