package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Wire claim names. The backend issues the subject id under "nameid"
// (ASP.NET convention); "sub" is accepted as a fallback.
const (
	claimNameID = "nameid"
	claimSub    = "sub"
	claimEmail  = "email"
	claimRole   = "role"
)

// Decode extracts the claims embedded in a bearer credential without
// verifying signature or expiry. No signing secret exists client-side, so
// the decode is for display and routing only; the backend stays the
// authority on validity and its 401 is the real expiry signal.
//
// Decode returns nil on any malformed input (wrong segment count, bad
// base64url, non-JSON payload, missing subject id) so callers can treat
// failure as "not authenticated" rather than crash.
func Decode(credential string) *Claims {
	if credential == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return nil
	}

	subject, _ := claims[claimNameID].(string)
	if subject == "" {
		subject, _ = claims[claimSub].(string)
	}
	if subject == "" {
		return nil
	}

	email, _ := claims[claimEmail].(string)

	return &Claims{
		Subject: subject,
		Email:   email,
		Roles:   normalizeRoles(claims[claimRole]),
	}
}

// normalizeRoles maps the duck-typed wire role field to a set: absent yields
// an empty set, a scalar becomes a one-element set, a collection passes
// through with non-string entries dropped.
func normalizeRoles(raw any) []Role {
	switch v := raw.(type) {
	case string:
		return []Role{Role(v)}
	case []any:
		roles := make([]Role, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, Role(s))
			}
		}
		return roles
	default:
		return []Role{}
	}
}
