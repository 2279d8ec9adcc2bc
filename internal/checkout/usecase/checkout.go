package usecase

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"

	"shopfront/internal/checkout"
	"shopfront/internal/model"
	"shopfront/internal/session"
	"shopfront/pkg/errs"
	"shopfront/pkg/storeapi"
	"shopfront/pkg/token"
)

// step is one named stage of the checkout pipeline. Steps run strictly in
// order; each network call completes before the next begins, because the
// order must reference a profile the backend has already acknowledged.
type step struct {
	name string
	run  func(ctx context.Context) error
}

func (uc *usecase) runPipeline(ctx context.Context, attemptID string, steps []step) error {
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			uc.l.Warnf(ctx, "internal.checkout.usecase.%s: attempt %s: %v", st.name, attemptID, err)
			if errors.Is(err, errs.ErrUnauthorized) {
				// A 401 mid-purchase must not leave a partially
				// authenticated state behind.
				uc.session.Logout(ctx)
			}
			return err
		}
	}
	return nil
}

func (uc *usecase) Checkout(ctx context.Context, input checkout.Input) (checkout.Output, error) {
	if err := uc.authorize(); err != nil {
		return checkout.Output{}, err
	}
	if !input.Request.PaymentMethod.Valid() {
		return checkout.Output{}, checkout.ErrInvalidPaymentMethod
	}
	if !input.Request.ShippingAddress.Valid() {
		return checkout.Output{}, checkout.ErrInvalidShippingMode
	}

	attemptID := uuid.NewString()
	var result storeapi.CheckoutResult

	err := uc.runPipeline(ctx, attemptID, []step{
		{name: "SyncProfile", run: func(ctx context.Context) error {
			return uc.syncProfile(ctx, input.ProfileCorrections)
		}},
		{name: "SubmitOrder", run: func(ctx context.Context) error {
			var err error
			result, err = uc.api.Checkout(ctx, input.Request)
			return err
		}},
	})
	if err != nil {
		return checkout.Output{}, err
	}

	if input.Request.PaymentMethod == model.PaymentMethodOnline {
		return uc.handOffToGateway(ctx, attemptID, result)
	}
	return uc.verifyImmediately(ctx, attemptID, input.Request.PaymentMethod, result)
}

func (uc *usecase) authorize() error {
	snap := uc.session.Snapshot()
	if snap.State != session.StateAuthenticated || snap.Identity == nil {
		return session.ErrNotAuthenticated
	}
	if !snap.Identity.HasRole(token.RoleMember) {
		return checkout.ErrRoleNotAllowed
	}
	return nil
}

// syncProfile makes the backend's authoritative shipping profile match what
// the user is about to pay against. Any failure aborts the whole checkout;
// an order must never be charged against an unacknowledged profile.
func (uc *usecase) syncProfile(ctx context.Context, corrections model.Profile) error {
	profile, err := uc.api.Profile(ctx)
	if err != nil {
		return err
	}
	return uc.api.UpdateProfile(ctx, profile.MergeCorrections(corrections))
}

// handOffToGateway writes the single pending-payment marker and hands the
// rest of the flow to the callback resolver. No verification call happens
// here; the resolver owns everything past the redirect.
func (uc *usecase) handOffToGateway(ctx context.Context, attemptID string, result storeapi.CheckoutResult) (checkout.Output, error) {
	if result.GatewayURL == "" {
		return checkout.Output{}, checkout.ErrMissingGatewayURL
	}

	uc.pending.SetOrder(model.PendingPayment{OrderID: result.OrderID, AttemptID: attemptID})
	uc.l.Infof(ctx, "internal.checkout.usecase.Checkout: attempt %s: order %s handed off to gateway", attemptID, result.OrderID)

	return checkout.Output{
		OrderID:    result.OrderID,
		Next:       checkout.NextGateway,
		GatewayURL: result.GatewayURL,
		AttemptID:  attemptID,
	}, nil
}

// verifyImmediately settles balance and COD orders in place. A failed
// verdict here is soft: the order already exists server-side, so the flow
// still advances to the order listing and only surfaces a warning. A 401 is
// never soft.
func (uc *usecase) verifyImmediately(ctx context.Context, attemptID string, method model.PaymentMethod, result storeapi.CheckoutResult) (checkout.Output, error) {
	params := url.Values{}
	params.Set("orderId", result.OrderID)
	params.Set("paymentMethod", string(method))

	output := checkout.Output{
		OrderID:   result.OrderID,
		Next:      checkout.NextOrders,
		AttemptID: attemptID,
	}

	if err := uc.api.VerifyPayment(ctx, params); err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			uc.session.Logout(ctx)
			return checkout.Output{}, err
		}
		uc.l.Warnf(ctx, "internal.checkout.usecase.Checkout: attempt %s: verification failed for order %s: %v", attemptID, result.OrderID, err)
		output.VerifyWarning = "payment could not be confirmed yet; the order was created"
	}

	return output, nil
}
