package session

import (
	"context"

	"shopfront/internal/model"
)

// UseCase is the session manager: the single source of truth for "am I
// authenticated, and as whom". All identity writes (login, logout, refresh,
// restore) go through it and are atomic wholesale replaces; no reader ever
// observes a new credential with stale claims.
type UseCase interface {
	// Restore loads the persisted identity once at startup. The Loading
	// state is published synchronously, before any storage read, so
	// consumers never see Anonymous while restoration is still in flight.
	Restore(ctx context.Context)

	// Login authenticates against the backend and publishes the new
	// identity. A credential that decodes without a subject id fails with
	// errs.ErrInvalidCredentialFormat before anything is persisted.
	Login(ctx context.Context, email, password string) (*model.Identity, error)

	// Logout clears the stored identity and publishes Anonymous. It never
	// calls the network; logout is locally effective even offline.
	Logout(ctx context.Context)

	// Refresh replaces the identity using the stored refresh credential.
	// On any failure it performs a full logout and returns the error, so
	// callers cannot observe a half-refreshed state.
	Refresh(ctx context.Context) (*model.Identity, error)

	// Snapshot returns the current state and identity.
	Snapshot() Snapshot
}

// Store synchronizes the identity across the durable tier, the volatile
// run-scoped tier, and the outbound default headers.
type Store interface {
	// Load reads the durable record and re-derives claims from the stored
	// credential. A record that cannot be decoded into a full identity is
	// cleared and (nil, nil) is returned, never a half-valid identity.
	Load(ctx context.Context) (*model.Identity, error)
	Save(ctx context.Context, identity model.Identity) error
	Clear(ctx context.Context) error
}

// API is the slice of the backend client the session manager depends on.
type API interface {
	Login(ctx context.Context, email, password string) (model.Credential, error)
	Refresh(ctx context.Context, refreshToken string) (model.Credential, error)
	Profile(ctx context.Context) (model.Profile, error)
}

// HeaderSink receives the outbound default headers the store maintains.
// *storeapi.Client implements it.
type HeaderSink interface {
	SetIdentity(accessToken, userID string)
	ClearIdentity()
}
