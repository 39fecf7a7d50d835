package domain

// Claim names carried by every session token.
const (
	ClaimIdentity   = "identity"
	ClaimRole       = "role"
	ClaimExpiration = "exp"
)

// Claims is the decoded payload of a session token.
type Claims map[string]any

// Clone returns a shallow copy so callers never share the underlying map.
func (c Claims) Clone() Claims {
	out := make(Claims, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Identity returns the authenticated subject's email.
func (c Claims) Identity() string {
	s, _ := c[ClaimIdentity].(string)
	return s
}

// Role returns the role the token was issued for.
func (c Claims) Role() Role {
	s, _ := c[ClaimRole].(string)
	return Role(s)
}
