package health

import (
	"net/http"
	"webatelier-backend/monitoring"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Liveness endpoint, no auth
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]interface{} "status: ok"
// @Router /health [get]
func HealthCheck(m *monitoring.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": m.Uptime().String(),
		})
	}
}

// @Summary Process metrics
// @Description Request count, error count, average response time and error rate
// @Tags operations
// @Produce json
// @Success 200 {object} monitoring.Stats
// @Router /metrics [get]
func Metrics(m *monitoring.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Snapshot())
	}
}
