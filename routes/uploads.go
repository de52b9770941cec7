package routes

import (
	"webatelier-backend/handlers/uploads"
	"webatelier-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UploadsRoutes(r *gin.Engine, formLimiter *middleware.RateLimiter) {
	r.POST("/api/upload", formLimiter.Middleware(), uploads.LimitRequestBody(), uploads.UploadFile)
}
