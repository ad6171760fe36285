package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	resGroup := g.Group("/resources/:id/photos")
	resGroup.Use(authMiddleware)
	{
		resGroup.GET("", h.ListByResource)
		resGroup.POST("", adminMiddleware, h.Upload)
	}

	group := g.Group("/photos")
	group.Use(authMiddleware)
	{
		group.GET("/:id", h.Download)
		group.GET("/:id/thumbnail", h.DownloadThumbnail)
		group.DELETE("/:id", adminMiddleware, h.Delete)
	}
}
