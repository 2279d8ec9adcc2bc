package usecase

import (
	"context"

	"shopfront/internal/model"
	"shopfront/internal/session"
	"shopfront/pkg/errs"
	"shopfront/pkg/token"
)

func (uc *usecase) Snapshot() session.Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return session.Snapshot{State: uc.state, Identity: uc.identity}
}

// publish replaces state and identity in one step.
func (uc *usecase) publish(state session.State, identity *model.Identity) {
	uc.mu.Lock()
	uc.state = state
	uc.identity = identity
	uc.mu.Unlock()
}

func (uc *usecase) Restore(ctx context.Context) {
	// Loading must be observable before the durable record is touched, or a
	// consumer checking mid-restore would see Anonymous and bounce the user
	// to login on a plain restart.
	uc.publish(session.StateLoading, nil)

	identity, err := uc.store.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Restore: %v", err)
		uc.publish(session.StateAnonymous, nil)
		return
	}
	if identity == nil {
		uc.publish(session.StateAnonymous, nil)
		return
	}

	uc.publish(session.StateAuthenticated, identity)
	uc.l.Infof(ctx, "internal.session.usecase.Restore: identity restored for user %s", identity.UserID())
	uc.warmup()
}

func (uc *usecase) Login(ctx context.Context, email, password string) (*model.Identity, error) {
	cred, err := uc.api.Login(ctx, email, password)
	if err != nil {
		uc.l.Warnf(ctx, "internal.session.usecase.Login: %v", err)
		return nil, err
	}

	claims := token.Decode(cred.AccessToken)
	if claims == nil {
		// A malformed token must never produce a "logged in with unknown
		// user" state; nothing is persisted.
		uc.l.Errorf(ctx, "internal.session.usecase.Login: issued credential has no decodable subject")
		return nil, errs.ErrInvalidCredentialFormat
	}

	identity := &model.Identity{Credential: cred, Claims: *claims}
	if err := uc.store.Save(ctx, *identity); err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Login.Save: %v", err)
		return nil, err
	}

	uc.publish(session.StateAuthenticated, identity)
	uc.l.Infof(ctx, "internal.session.usecase.Login: user %s logged in", identity.UserID())
	uc.warmup()
	return identity, nil
}

func (uc *usecase) Logout(ctx context.Context) {
	// Publish first: logout must be locally effective even when the store
	// cannot reach its durable tier.
	uc.publish(session.StateAnonymous, nil)
	if err := uc.store.Clear(ctx); err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Logout: %v", err)
	}
}

func (uc *usecase) Refresh(ctx context.Context) (*model.Identity, error) {
	uc.mu.RLock()
	current := uc.identity
	uc.mu.RUnlock()
	if current == nil {
		return nil, session.ErrNotAuthenticated
	}

	cred, err := uc.api.Refresh(ctx, current.Credential.RefreshToken)
	if err != nil {
		uc.l.Warnf(ctx, "internal.session.usecase.Refresh: %v", err)
		uc.Logout(ctx)
		return nil, err
	}

	claims := token.Decode(cred.AccessToken)
	if claims == nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Refresh: refreshed credential has no decodable subject")
		uc.Logout(ctx)
		return nil, errs.ErrInvalidCredentialFormat
	}

	identity := &model.Identity{Credential: cred, Claims: *claims}
	if err := uc.store.Save(ctx, *identity); err != nil {
		uc.l.Errorf(ctx, "internal.session.usecase.Refresh.Save: %v", err)
		uc.Logout(ctx)
		return nil, err
	}

	uc.publish(session.StateAuthenticated, identity)
	return identity, nil
}
