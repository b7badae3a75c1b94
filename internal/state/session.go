package state

import (
	"time"

	"statusboard/internal/api"
)

// Session is the identity established by a successful login.
type Session struct {
	LoggedIn bool
	Username string
	Role     api.Role
	Token    string
	// TokenExpiry is zero when the token carries no readable expiry.
	TokenExpiry time.Time
}

// Establish records a successful login.
func (s *Session) Establish(username string, role api.Role, token string) {
	s.LoggedIn = true
	s.Username = username
	s.Role = role
	s.Token = token
	s.TokenExpiry = tokenExpiry(token)
}

// Clear discards the session. The token is dropped client-side only.
func (s *Session) Clear() {
	*s = Session{}
}

// IsAdmin reports whether the session role is ADMIN.
func (s Session) IsAdmin() bool {
	return s.LoggedIn && s.Role == api.RoleAdmin
}

// Identity returns the identity attached to mutating API calls.
func (s Session) Identity() api.Identity {
	return api.Identity{Username: s.Username, Role: s.Role}
}

// ExpiresIn returns the time left before the token expires and whether an expiry is known.
func (s Session) ExpiresIn(now time.Time) (time.Duration, bool) {
	if s.TokenExpiry.IsZero() {
		return 0, false
	}
	return s.TokenExpiry.Sub(now), true
}
