package domain

import "time"

// Session is what a successful login returns: the sanitized user plus a
// signed bearer token the client sends on subsequent requests.
type Session struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return s != nil && now.After(s.ExpiresAt)
}
