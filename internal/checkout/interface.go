package checkout

import (
	"context"
	"net/url"

	"shopfront/internal/model"
	"shopfront/pkg/storeapi"
)

// UseCase drives a purchase or a top-up end to end. The steps of one flow
// are strictly sequential; each network call completes before the next
// begins, because later requests are built from earlier confirmed results.
type UseCase interface {
	// Checkout synchronizes the shipping profile, submits the order, and
	// completes on the chosen payment rail. For the online rail it writes
	// the pending-payment marker and returns the gateway URL; everything
	// after the redirect belongs to the payment callback resolver.
	Checkout(ctx context.Context, input Input) (Output, error)

	// Topup requests a balance top-up, writes the top-up marker and
	// returns the gateway URL.
	Topup(ctx context.Context, amount int64) (TopupOutput, error)
}

// API is the slice of the backend client checkout depends on.
type API interface {
	Profile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) error
	Checkout(ctx context.Context, req model.CheckoutRequest) (storeapi.CheckoutResult, error)
	Topup(ctx context.Context, amount int64) (storeapi.TopupResult, error)
	VerifyPayment(ctx context.Context, params url.Values) error
}
