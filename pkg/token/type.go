package token

// Role is one value of the fixed role vocabulary carried in a credential.
type Role string

const (
	RoleMember Role = "Member"
	RoleStaff  Role = "Staff"
	RoleAdmin  Role = "Admin"
)

// Claims is the decoded, read-only view of a bearer credential: subject id,
// email and the role set. Roles is always a set, even when the wire format
// sends a single scalar, so downstream code never branches on the wire shape.
type Claims struct {
	Subject string
	Email   string
	Roles   []Role
}

// HasRole reports whether r is in the claims' role set.
func (c *Claims) HasRole(r Role) bool {
	for _, have := range c.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the claims' role set intersects roles.
func (c *Claims) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}
