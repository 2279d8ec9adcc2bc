package usecase

import (
	"sync"
	"time"

	"shopfront/internal/model"
	"shopfront/internal/session"
	pkgLog "shopfront/pkg/log"
)

// warmupTimeout bounds the best-effort post-login profile call.
const warmupTimeout = 10 * time.Second

type usecase struct {
	l     pkgLog.Logger
	api   session.API
	store session.Store

	mu       sync.RWMutex
	state    session.State
	identity *model.Identity

	// warmupErrs is the error channel of the fire-and-forget profile
	// warm-up. Failures land here and are only ever logged; they never
	// propagate into a login or restore result.
	warmupErrs chan error
	drainOnce  sync.Once
}

func New(l pkgLog.Logger, api session.API, store session.Store) session.UseCase {
	return &usecase{
		l:          l,
		api:        api,
		store:      store,
		state:      session.StateUninitialized,
		warmupErrs: make(chan error, 4),
	}
}
