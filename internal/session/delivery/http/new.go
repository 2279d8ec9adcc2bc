package http

import (
	"context"

	"shopfront/internal/model"
	"shopfront/internal/session"
	"shopfront/pkg/log"
	"shopfront/pkg/storeapi"
)

// AccountAPI covers the account-management endpoints that sit outside the
// session lifecycle proper. *storeapi.Client implements it.
type AccountAPI interface {
	Register(ctx context.Context, input storeapi.RegisterInput) error
	ConfirmEmail(ctx context.Context, token string) error
	ResendConfirmation(ctx context.Context, email string) error
	Profile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, p model.Profile) error
}

type Handler struct {
	l        log.Logger
	uc       session.UseCase
	accounts AccountAPI
}

func New(l log.Logger, uc session.UseCase, accounts AccountAPI) *Handler {
	return &Handler{l: l, uc: uc, accounts: accounts}
}
