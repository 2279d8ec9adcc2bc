package usecase

import (
	"time"

	"shopfront/internal/payment"
	"shopfront/internal/payment/pending"
	"shopfront/internal/session"
	pkgLog "shopfront/pkg/log"
)

// DefaultNavigateDelay is how long a failure (or purchase success) outcome
// stays on screen before the user is moved along.
const DefaultNavigateDelay = 3 * time.Second

type usecase struct {
	l       pkgLog.Logger
	api     payment.API
	session session.UseCase
	pending *pending.Store
	delay   time.Duration
}

func New(l pkgLog.Logger, api payment.API, sess session.UseCase, pendingStore *pending.Store, navigateDelay time.Duration) payment.UseCase {
	if navigateDelay <= 0 {
		navigateDelay = DefaultNavigateDelay
	}
	return &usecase{
		l:       l,
		api:     api,
		session: sess,
		pending: pendingStore,
		delay:   navigateDelay,
	}
}
