package routes

import (
	"webatelier-backend/handlers/admin"
	"webatelier-backend/handlers/newsletter"
	"webatelier-backend/middleware"
	"webatelier-backend/monitoring"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine, m *monitoring.Monitor) {
	r.POST("/api/admin/login", admin.Login)

	// Routes d'administration protégées par jeton bearer
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("/contacts", admin.GetContacts)
		adminRoutes.GET("/newsletter/subscribers", newsletter.GetActiveSubscribers)
		adminRoutes.GET("/errors", admin.GetErrors(m))
	}
}
