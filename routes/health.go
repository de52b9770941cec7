package routes

import (
	"webatelier-backend/handlers/health"
	"webatelier-backend/monitoring"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(r *gin.Engine, m *monitoring.Monitor) {
	r.GET("/health", health.HealthCheck(m))
	r.GET("/metrics", health.Metrics(m))
}
