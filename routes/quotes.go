package routes

import (
	"webatelier-backend/handlers/quotes"
	"webatelier-backend/middleware"

	"github.com/gin-gonic/gin"
)

func QuotesRoutes(r *gin.Engine, formLimiter *middleware.RateLimiter) {
	r.POST("/api/generate-quote", formLimiter.Middleware(), quotes.GenerateQuote)
}
