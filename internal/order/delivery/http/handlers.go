package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/middleware"
	"shopfront/pkg/errs"
	"shopfront/pkg/response"
)

type cartLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func (h *Handler) Cart(c *gin.Context) {
	lines, err := h.uc.Cart(c.Request.Context())
	if err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OK(c, lines)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}
	if err := h.uc.AddToCart(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OKMessage(c, "added to cart")
}

func (h *Handler) UpdateLine(c *gin.Context) {
	var req cartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}
	if err := h.uc.UpdateLine(c.Request.Context(), c.Param("id"), req.ProductID, req.Quantity); err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OKMessage(c, "cart line updated")
}

func (h *Handler) RemoveLine(c *gin.Context) {
	if err := h.uc.RemoveLine(c.Request.Context(), c.Param("id")); err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OKMessage(c, "cart line removed")
}

func (h *Handler) Orders(c *gin.Context) {
	orders, err := h.uc.Orders(c.Request.Context())
	if err != nil {
		h.failAuthAware(c, err)
		return
	}
	response.OK(c, orders)
}

func (h *Handler) failAuthAware(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrUnauthorized) {
		h.session.Logout(c.Request.Context())
		c.Redirect(http.StatusFound, middleware.LoginRoute)
		return
	}
	response.Error(c, err)
}
