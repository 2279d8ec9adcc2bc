package model

import "shopfront/pkg/token"

// Credential is the opaque bearer/refresh token pair issued by the backend
// at login or refresh. It is owned exclusively by the session store and is
// destroyed on logout or refresh failure.
type Credential struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType,omitempty"`
	AuthType     string `json:"authType,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// Identity is the client's notion of "who is logged in": the credential plus
// the claims decoded from it. Claims are always re-derived from the access
// token, never persisted on their own, so they cannot go stale relative to
// the credential.
type Identity struct {
	Credential Credential   `json:"credential"`
	Claims     token.Claims `json:"-"`
}

// UserID returns the subject id of the identity.
func (i *Identity) UserID() string {
	return i.Claims.Subject
}

// HasRole reports whether the identity's role set contains r.
func (i *Identity) HasRole(r token.Role) bool {
	return i.Claims.HasRole(r)
}
