package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		// Permission rules (admin vs booking owner) live in the service.
		group.POST("/:id/process", h.Process)
		group.POST("/:id/reschedule", h.Reschedule)
		group.DELETE("/:id", h.Cancel)
	}

	g.GET("/stats", authMiddleware, h.Stats)
}
