package usecase

import (
	"context"
	"errors"
	"net/url"

	"shopfront/internal/payment"
	"shopfront/pkg/errs"
)

// Resolve terminates a pending payment with the backend's verdict. The
// matching marker is removed in a deferred cleanup that runs whether
// verification succeeded, failed, or panicked: once resolution has started,
// a stale marker must never outlive it.
func (uc *usecase) Resolve(ctx context.Context, flow payment.Flow, params url.Values) (outcome payment.Outcome) {
	var orderID string
	if marker, ok := uc.pending.Order(); ok && flow == payment.FlowPurchase {
		orderID = marker.OrderID
		uc.l.Infof(ctx, "internal.payment.usecase.Resolve: resolving order %s (attempt %s)", marker.OrderID, marker.AttemptID)
	}

	defer func() {
		switch flow {
		case payment.FlowTopup:
			uc.pending.ClearTopup()
		default:
			uc.pending.ClearOrder()
		}
	}()

	err := uc.api.VerifyPayment(ctx, params)
	if err == nil {
		return uc.succeed(flow, orderID)
	}

	uc.l.Warnf(ctx, "internal.payment.usecase.Resolve: %v", err)

	if errors.Is(err, errs.ErrUnauthorized) {
		uc.session.Logout(ctx)
		return payment.Outcome{
			Flow:       flow,
			Verdict:    payment.VerdictFailure,
			Message:    "session expired during payment confirmation",
			NavigateTo: payment.RouteLogin,
			OrderID:    orderID,
		}
	}

	// Gateway rejection and transport failure look the same to the user:
	// the payment is not confirmed, and no client-side retry is attempted.
	return uc.fail(flow, err, orderID)
}

func (uc *usecase) succeed(flow payment.Flow, orderID string) payment.Outcome {
	outcome := payment.Outcome{
		Flow:    flow,
		Verdict: payment.VerdictSuccess,
		OrderID: orderID,
	}
	switch flow {
	case payment.FlowTopup:
		outcome.Message = "top-up confirmed"
		outcome.NavigateTo = payment.RouteProfile
	default:
		outcome.Message = "payment confirmed"
		outcome.NavigateTo = payment.RouteOrders
		outcome.NavigateIn = uc.delay
	}
	return outcome
}

func (uc *usecase) fail(flow payment.Flow, cause error, orderID string) payment.Outcome {
	outcome := payment.Outcome{
		Flow:       flow,
		Verdict:    payment.VerdictFailure,
		Message:    cause.Error(),
		NavigateIn: uc.delay,
		OrderID:    orderID,
	}
	switch flow {
	case payment.FlowTopup:
		outcome.NavigateTo = payment.RouteTopup
	default:
		outcome.NavigateTo = payment.RouteCart
	}
	return outcome
}
