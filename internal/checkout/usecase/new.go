package usecase

import (
	"shopfront/internal/checkout"
	"shopfront/internal/payment/pending"
	"shopfront/internal/session"
	pkgLog "shopfront/pkg/log"
)

// minTopupAmount is the backend's minimum accepted top-up.
const minTopupAmount = 10000

type usecase struct {
	l       pkgLog.Logger
	api     checkout.API
	session session.UseCase
	pending *pending.Store
}

func New(l pkgLog.Logger, api checkout.API, sess session.UseCase, pendingStore *pending.Store) checkout.UseCase {
	return &usecase{
		l:       l,
		api:     api,
		session: sess,
		pending: pendingStore,
	}
}
