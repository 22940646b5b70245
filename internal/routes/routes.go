package routes

import (
	"net/http"

	"devconnector_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes монтирует все маршруты приложения под /api/v1
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)
	}
}
