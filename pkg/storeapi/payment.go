package storeapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"shopfront/pkg/errs"
)

// VerifyPayment asks the backend for the authoritative payment verdict.
// params are forwarded verbatim: for gateway returns they are the full raw
// query string the gateway appended; the client never interprets
// gateway-specific codes itself. A non-success verdict comes back as
// *errs.GatewayError; 401 and transport failures map as usual.
func (c *Client) VerifyPayment(ctx context.Context, params url.Values) error {
	_, err := c.call(ctx, "VerifyPayment", http.MethodGet, "/payment/ipn", params, nil)
	if err == nil {
		return nil
	}

	// A rejection envelope from this endpoint is a verdict, not a generic
	// backend failure.
	var remote *errs.RemoteError
	if errors.As(err, &remote) {
		return errs.NewGatewayError(remote.Code, remote.Message)
	}
	return err
}

func errsDecode(op string, err error) error {
	return errs.NewTransportError(op, err)
}
