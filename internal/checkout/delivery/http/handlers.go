package http

import (
	"errors"
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/gin-gonic/gin"

	"shopfront/internal/checkout"
	"shopfront/internal/middleware"
	"shopfront/internal/model"
	"shopfront/pkg/errs"
	"shopfront/pkg/response"
)

type checkoutRequest struct {
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	VoucherCode     string `json:"voucherCode"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`

	// Shipping form corrections applied during profile sync.
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phoneNumber"`
	Address string `json:"address"`
}

type checkoutView struct {
	OrderID string `json:"orderId"`
	Next    string `json:"next"`
	Warning string `json:"warning,omitempty"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("body", err.Error())))
		return
	}

	corrections := model.Profile{Name: req.Name, Email: req.Email}
	if req.Phone != "" {
		corrections.PhoneNumber = null.StringFrom(req.Phone)
	}
	if req.Address != "" {
		corrections.ShippingAddress = null.StringFrom(req.Address)
	}

	output, err := h.uc.Checkout(c.Request.Context(), checkout.Input{
		Request: model.CheckoutRequest{
			PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
			VoucherCode:     req.VoucherCode,
			ShippingAddress: model.ShippingAddressMode(req.ShippingAddress),
		},
		ProfileCorrections: corrections,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if output.Next == checkout.NextGateway {
		// Full navigation away to the gateway; the callback resolver owns
		// everything from here.
		c.Redirect(http.StatusFound, output.GatewayURL)
		return
	}

	response.OK(c, checkoutView{
		OrderID: output.OrderID,
		Next:    string(output.Next),
		Warning: output.VerifyWarning,
	})
}

type topupRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

func (h *Handler) Topup(c *gin.Context) {
	var req topupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("amount", err.Error())))
		return
	}

	output, err := h.uc.Topup(c.Request.Context(), req.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, output.GatewayURL)
}

// fail maps checkout errors. The usecase already forced the logout on a 401;
// here the request is just pointed at the login route.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		c.Redirect(http.StatusFound, middleware.LoginRoute)
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("paymentMethod", err.Error())))
	case errors.Is(err, checkout.ErrInvalidShippingMode):
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("shippingAddress", err.Error())))
	case errors.Is(err, checkout.ErrAmountTooSmall):
		response.Error(c, errs.NewValidationErrors(errs.NewFieldError("amount", err.Error())))
	default:
		response.Error(c, err)
	}
}
