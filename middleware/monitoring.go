package middleware

import (
	"fmt"
	"time"

	"webatelier-backend/monitoring"
	"webatelier-backend/utils"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 1000 * time.Millisecond

// ResponseTime mesure chaque requête, loggue les traitements lents et
// alimente le tampon glissant du moniteur. La mesure est faite en defer
// pour couvrir aussi les handlers qui paniquent: la panique est alors
// relancée vers le Recovery de gin, qui répond 500.
func ResponseTime(m *monitoring.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			elapsed := time.Since(start)
			if elapsed > slowRequestThreshold {
				utils.LogWarning(fmt.Sprintf("Requête lente: %s %s en %s", c.Request.Method, c.Request.URL.Path, elapsed))
			}

			if r := recover(); r != nil {
				m.RecordRequest(elapsed, true)
				panic(r)
			}
			m.RecordRequest(elapsed, c.Writer.Status() >= 500)
		}()

		c.Next()
	}
}

// ErrorCapture enregistre toute erreur de handler dans le journal
// circulaire, y compris les paniques, qui sont relancées après capture
func ErrorCapture(m *monitoring.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.RecordError(monitoring.ErrorEntry{
					Timestamp: time.Now(),
					Path:      c.Request.URL.Path,
					Method:    c.Request.Method,
					ClientIP:  c.ClientIP(),
					Message:   fmt.Sprintf("panic: %v", r),
				})
				panic(r)
			}

			if c.Writer.Status() < 500 && len(c.Errors) == 0 {
				return
			}

			message := fmt.Sprintf("HTTP %d", c.Writer.Status())
			if len(c.Errors) > 0 {
				message = c.Errors.Last().Error()
			}

			m.RecordError(monitoring.ErrorEntry{
				Timestamp: time.Now(),
				Path:      c.Request.URL.Path,
				Method:    c.Request.Method,
				ClientIP:  c.ClientIP(),
				Message:   message,
			})
		}()

		c.Next()
	}
}
