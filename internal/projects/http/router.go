package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
// The bare "/" variants exist so a missing ID reaches the handler and is
// rejected with the failure envelope instead of a router 404.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("/", h.get)
	rg.GET("/:id", h.get)
	rg.PATCH("/", h.update)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/", h.delete)
	rg.DELETE("/:id", h.delete)
}
