package payment

import (
	"context"
	"net/url"
)

// UseCase resolves a pending payment when control returns from the external
// gateway. It forwards the gateway's return parameters verbatim to the
// verification endpoint and maps the server's verdict; the client never
// interprets gateway-specific codes itself.
type UseCase interface {
	Resolve(ctx context.Context, flow Flow, params url.Values) Outcome
}

// API is the slice of the backend client the resolver depends on.
type API interface {
	VerifyPayment(ctx context.Context, params url.Values) error
}
