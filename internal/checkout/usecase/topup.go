package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"shopfront/internal/checkout"
	"shopfront/internal/model"
	"shopfront/pkg/errs"
)

func (uc *usecase) Topup(ctx context.Context, amount int64) (checkout.TopupOutput, error) {
	if err := uc.authorize(); err != nil {
		return checkout.TopupOutput{}, err
	}
	if amount < minTopupAmount {
		return checkout.TopupOutput{}, checkout.ErrAmountTooSmall
	}

	attemptID := uuid.NewString()

	result, err := uc.api.Topup(ctx, amount)
	if err != nil {
		uc.l.Warnf(ctx, "internal.checkout.usecase.Topup: attempt %s: %v", attemptID, err)
		if errors.Is(err, errs.ErrUnauthorized) {
			uc.session.Logout(ctx)
		}
		return checkout.TopupOutput{}, err
	}
	if result.GatewayURL == "" {
		return checkout.TopupOutput{}, checkout.ErrMissingGatewayURL
	}

	uc.pending.SetTopup(model.PendingPayment{Amount: amount, AttemptID: attemptID})
	uc.l.Infof(ctx, "internal.checkout.usecase.Topup: attempt %s: top-up of %d handed off to gateway", attemptID, amount)

	return checkout.TopupOutput{GatewayURL: result.GatewayURL, AttemptID: attemptID}, nil
}
