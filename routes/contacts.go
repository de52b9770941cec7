package routes

import (
	"webatelier-backend/handlers/contacts"
	"webatelier-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine, formLimiter *middleware.RateLimiter) {
	r.POST("/api/contact", formLimiter.Middleware(), contacts.CreateContact)
}
