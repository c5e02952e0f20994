package domain

import "time"

// Session binds an opaque token to an authenticated username. It
// exists only after a successful credential check and dies on logout
// or expiry.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}
