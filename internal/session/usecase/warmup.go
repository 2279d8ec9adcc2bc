package usecase

import "context"

// warmup issues one best-effort profile fetch after an identity is
// established, so a cookie-assisted backend has its server-side session set
// before protected calls are made. The fetch runs detached with its own
// error channel; a failure is logged and never blocks or fails the login or
// restore that triggered it.
func (uc *usecase) warmup() {
	uc.drainOnce.Do(func() {
		go uc.drainWarmupErrors()
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
		defer cancel()
		if _, err := uc.api.Profile(ctx); err != nil {
			select {
			case uc.warmupErrs <- err:
			default:
			}
		}
	}()
}

func (uc *usecase) drainWarmupErrors() {
	for err := range uc.warmupErrs {
		uc.l.Warnf(context.Background(), "internal.session.usecase.warmup: profile warm-up failed: %v", err)
	}
}
