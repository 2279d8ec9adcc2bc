package http

import (
	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/pkg/token"
)

// RegisterRoutes mounts the purchase routes. Checkout and top-up are Member
// actions; the role gate runs before any handler code.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	member := r.Group("")
	member.Use(mw.RequireSession(), mw.RequireRole(token.RoleMember))
	{
		member.POST("/checkout", h.Checkout)
		member.POST("/topup", h.Topup)
	}
}
