package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/payment"
	"shopfront/pkg/response"
)

// RegisterRoutes mounts the gateway return paths. They are deliberately
// unguarded: a gateway redirect can land here right after a restart, while
// session restoration is still in flight, and must not be bounced.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/payment/callback", h.PurchaseCallback)
	r.GET("/payment/topup/callback", h.TopupCallback)
}

func (h *Handler) PurchaseCallback(c *gin.Context) {
	h.resolve(c, payment.FlowPurchase)
}

func (h *Handler) TopupCallback(c *gin.Context) {
	h.resolve(c, payment.FlowTopup)
}

type outcomeView struct {
	Verdict    string `json:"verdict"`
	Message    string `json:"message"`
	NavigateTo string `json:"navigateTo"`
	OrderID    string `json:"orderId,omitempty"`
}

// resolve forwards the gateway's raw return parameters and renders the
// verdict. When the outcome carries a delay, the Refresh header moves the
// user along after they have had time to read it; otherwise it is an
// immediate redirect.
func (h *Handler) resolve(c *gin.Context, flow payment.Flow) {
	outcome := h.uc.Resolve(c.Request.Context(), flow, c.Request.URL.Query())

	if outcome.NavigateIn <= 0 {
		c.Redirect(http.StatusFound, outcome.NavigateTo)
		return
	}

	c.Header("Refresh", fmt.Sprintf("%d; url=%s", int(outcome.NavigateIn.Seconds()), outcome.NavigateTo))
	view := outcomeView{
		Verdict:    string(outcome.Verdict),
		Message:    outcome.Message,
		NavigateTo: outcome.NavigateTo,
		OrderID:    outcome.OrderID,
	}
	if outcome.Verdict == payment.VerdictSuccess {
		response.OK(c, view)
		return
	}
	c.JSON(http.StatusOK, response.Resp{Code: response.CodeGatewayError, Message: outcome.Message, Data: view})
}
