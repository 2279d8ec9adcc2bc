package session

import "shopfront/internal/model"

// State is the session lifecycle state machine:
// Uninitialized → Loading → {Authenticated, Anonymous}.
// Authenticated falls back to Anonymous on logout or refresh failure;
// Anonymous becomes Authenticated only through login.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Snapshot is one consistent read of the session: the state and, when
// authenticated, the identity.
type Snapshot struct {
	State    State
	Identity *model.Identity
}
