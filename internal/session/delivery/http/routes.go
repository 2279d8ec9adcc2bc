package http

import (
	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
)

// RegisterRoutes mounts the auth and account routes. Login, logout and the
// registration flow stay outside the guard; the profile pages require an
// authenticated Member-or-better session.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/session", h.Session)
	r.POST("/register", h.Register)
	r.PATCH("/confirm-email", h.ConfirmEmail)
	r.PATCH("/resend-confirmation", h.ResendConfirmation)

	authed := r.Group("")
	authed.Use(mw.RequireSession())
	{
		authed.POST("/refresh", h.Refresh)
		authed.GET("/profile", h.Profile)
		authed.PUT("/profile", h.UpdateProfile)
	}
}
