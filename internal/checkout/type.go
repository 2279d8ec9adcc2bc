package checkout

import "shopfront/internal/model"

// Input is one checkout attempt: the payment rail choice plus any
// corrections to the shipping profile the user made on the checkout form.
type Input struct {
	Request model.CheckoutRequest
	// ProfileCorrections overlays the fetched profile before it is pushed
	// back to the backend in the profile-sync step.
	ProfileCorrections model.Profile
}

// Next tells the caller where the flow goes after a checkout returns.
type Next string

const (
	// NextOrders advances to the order listing (balance/COD rails).
	NextOrders Next = "orders"
	// NextGateway leaves the client for the external payment gateway.
	NextGateway Next = "gateway"
)

// Output is the result of a completed (or handed-off) checkout.
type Output struct {
	OrderID string
	Next    Next
	// GatewayURL is set only when Next == NextGateway.
	GatewayURL string
	// AttemptID identifies this checkout attempt in logs and the
	// pending-payment marker.
	AttemptID string
	// VerifyWarning is set on the soft-failure path: the order exists
	// server-side but immediate verification failed, so the caller still
	// advances while surfacing this.
	VerifyWarning string
}

// TopupOutput is the result of a top-up submission.
type TopupOutput struct {
	GatewayURL string
	AttemptID  string
}
