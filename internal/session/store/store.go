package store

import (
	"context"
	"encoding/json"

	"github.com/friendsofgo/errors"

	"shopfront/internal/model"
	pkgRedis "shopfront/pkg/redis"
	"shopfront/pkg/token"
)

// Storage keys: one durable record holding the full identity, one volatile
// mirror of the subject id that other components key background lookups off.
const (
	durableKeyAuth = "auth"
	volatileKeyUID = "UserID"
)

// storedAuth is the durable record layout. The claims snapshot inside it is
// informational only; Load always re-derives claims from the credential.
type storedAuth struct {
	Credential model.Credential `json:"credential"`
	User       storedUser       `json:"user"`
}

type storedUser struct {
	ID    string       `json:"id"`
	Email string       `json:"email"`
	Roles []token.Role `json:"roles"`
}

func (s *Store) Save(ctx context.Context, identity model.Identity) error {
	record := storedAuth{
		Credential: identity.Credential,
		User: storedUser{
			ID:    identity.Claims.Subject,
			Email: identity.Claims.Email,
			Roles: identity.Claims.Roles,
		},
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "session.store.Save: marshal record")
	}

	if err := s.durable.Set(ctx, durableKeyAuth, string(raw), 0); err != nil {
		return errors.Wrap(err, "session.store.Save: write durable record")
	}
	s.volatile.Set(volatileKeyUID, identity.Claims.Subject)
	s.headers.SetIdentity(identity.Credential.AccessToken, identity.Claims.Subject)
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.headers.ClearIdentity()
	s.volatile.Delete(volatileKeyUID)
	if err := s.durable.Delete(ctx, durableKeyAuth); err != nil {
		return errors.Wrap(err, "session.store.Clear: delete durable record")
	}
	return nil
}

// Load reads the durable record and rebuilds the identity. Claims are
// re-derived from the stored credential so they can never be stale relative
// to it. A record that does not decode into a full identity is removed and
// (nil, nil) returned; a half-valid identity is never handed out.
func (s *Store) Load(ctx context.Context) (*model.Identity, error) {
	raw, err := s.durable.Get(ctx, durableKeyAuth)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "session.store.Load: read durable record")
	}

	var record storedAuth
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.discard(ctx, "unreadable record")
		return nil, nil
	}

	claims := token.Decode(record.Credential.AccessToken)
	if claims == nil {
		s.discard(ctx, "stored credential no longer decodes")
		return nil, nil
	}

	identity := &model.Identity{Credential: record.Credential, Claims: *claims}
	s.volatile.Set(volatileKeyUID, claims.Subject)
	s.headers.SetIdentity(record.Credential.AccessToken, claims.Subject)
	return identity, nil
}

func (s *Store) discard(ctx context.Context, reason string) {
	s.l.Warnf(ctx, "internal.session.store.Load: discarding durable record: %s", reason)
	if err := s.Clear(ctx); err != nil {
		s.l.Errorf(ctx, "internal.session.store.Load: clear after discard: %v", err)
	}
}
