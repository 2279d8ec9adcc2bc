package http

import (
	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/pkg/token"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("", mw.RequireSession(), mw.RequireRole(token.RoleMember))
	g.GET("/cart", h.Cart)
	g.POST("/cart", h.AddToCart)
	g.PUT("/cart/:id", h.UpdateLine)
	g.DELETE("/cart/:id", h.RemoveLine)
	g.GET("/orders", h.Orders)
}
