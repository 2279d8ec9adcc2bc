package middleware

import (
	"shopfront/internal/session"
	pkgLog "shopfront/pkg/log"
)

// Middleware holds the route-guard dependencies. Guards consult only the
// session state machine; they never talk to the network.
type Middleware struct {
	l       pkgLog.Logger
	session session.UseCase
}

func New(l pkgLog.Logger, sess session.UseCase) Middleware {
	return Middleware{l: l, session: sess}
}

// Gin context key the authenticated identity is stored under.
const identityKey = "identity"
