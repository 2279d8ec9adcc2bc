package storeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"shopfront/internal/model"
)

type checkoutData struct {
	OrderID string `json:"orderId"`
}

// Checkout submits an order. The request is query-encoded, not a JSON body,
// and the voucher code travels as a JSON-encoded one-element array, both
// quirks of the backend contract. For the online rail the envelope message
// holds the gateway redirect URL.
func (c *Client) Checkout(ctx context.Context, req model.CheckoutRequest) (CheckoutResult, error) {
	query := url.Values{}
	query.Set("paymentMethod", string(req.PaymentMethod))
	query.Set("shippingAddress", string(req.ShippingAddress))
	if req.VoucherCode != "" {
		codes, err := json.Marshal([]string{req.VoucherCode})
		if err != nil {
			return CheckoutResult{}, err
		}
		query.Set("voucherCode", string(codes))
	}

	env, err := c.call(ctx, "Checkout", http.MethodPost, "/checkout", query, nil)
	if err != nil {
		return CheckoutResult{}, err
	}

	var data checkoutData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return CheckoutResult{}, errsDecode("Checkout", err)
		}
	}

	result := CheckoutResult{OrderID: data.OrderID}
	if req.PaymentMethod == model.PaymentMethodOnline {
		result.GatewayURL = env.Message
	}
	return result, nil
}

// Topup requests a balance top-up; the gateway URL comes back in message.
func (c *Client) Topup(ctx context.Context, amount int64) (TopupResult, error) {
	query := url.Values{}
	query.Set("amount", strconv.FormatInt(amount, 10))

	env, err := c.call(ctx, "Topup", http.MethodPost, "/checkout/topup", query, nil)
	if err != nil {
		return TopupResult{}, err
	}
	return TopupResult{GatewayURL: env.Message}, nil
}
