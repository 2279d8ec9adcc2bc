package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/internal/stats"
	"shopfront/pkg/errs"
	"shopfront/pkg/response"
)

func (h *Handler) Dashboard(c *gin.Context) {
	input := stats.DashboardInput{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	dashboard, err := h.uc.Dashboard(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			h.session.Logout(c.Request.Context())
			c.Redirect(http.StatusFound, middleware.LoginRoute)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, dashboard)
}
