package routes

import (
	"webatelier-backend/handlers/newsletter"
	"webatelier-backend/middleware"

	"github.com/gin-gonic/gin"
)

func NewsletterRoutes(r *gin.Engine, formLimiter *middleware.RateLimiter) {
	group := r.Group("/api/newsletter")
	{
		group.POST("/subscribe", formLimiter.Middleware(), newsletter.Subscribe)
		group.POST("/unsubscribe", newsletter.Unsubscribe)
		// Lien de désabonnement présent dans les mails
		group.GET("/unsubscribe", newsletter.UnsubscribeByLink)
		group.GET("/stats", newsletter.GetStats)
	}
}
