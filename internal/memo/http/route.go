package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/memos")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Send)
		group.DELETE("/:id", h.Delete)
	}
}
