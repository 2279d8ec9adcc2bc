package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/model"
	"shopfront/internal/session"
	"shopfront/pkg/token"
)

// LoginRoute is where anonymous requests are sent.
const LoginRoute = "/login"

// DefaultRoute is where authenticated users lacking a route's roles land.
const DefaultRoute = "/"

// RequireSession blocks while the session is still restoring, redirects
// anonymous requests to login, and stores the identity for handlers
// downstream. Loading must never be answered as if it were Anonymous, or a
// plain restart would bounce a logged-in user to the login page.
func (m Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := m.session.Snapshot()

		switch snap.State {
		case session.StateAuthenticated:
			c.Set(identityKey, snap.Identity)
			c.Next()
		case session.StateAnonymous:
			m.l.Debugf(c.Request.Context(), "internal.middleware.RequireSession: anonymous request to %s", c.Request.URL.Path)
			c.Redirect(http.StatusFound, LoginRoute)
			c.Abort()
		default:
			// Uninitialized or Loading: restoration is in flight.
			c.Header("Retry-After", "1")
			c.AbortWithStatus(http.StatusServiceUnavailable)
		}
	}
}

// RequireRole allows the request through only when the identity's role set
// intersects roles; otherwise it redirects to the default page. It assumes
// RequireSession ran earlier in the chain.
func (m Middleware) RequireRole(roles ...token.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil || !identity.Claims.HasAnyRole(roles...) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RequireRole: access to %s denied", c.Request.URL.Path)
			c.Redirect(http.StatusFound, DefaultRoute)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity RequireSession stored, or nil.
func IdentityFromContext(c *gin.Context) *model.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*model.Identity)
	return identity
}
