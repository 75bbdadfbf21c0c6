package db_models

import "time"

// Session binds an opaque bearer token to a user id until ExpiresAt.
// Validity is store-side: a token is live iff it is present in the
// session collection and the expiry has not passed.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
