package http

import (
	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/pkg/token"
)

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	g := r.Group("", mw.RequireSession(), mw.RequireRole(token.RoleAdmin, token.RoleStaff))
	g.GET("/dashboard", h.Dashboard)
}
