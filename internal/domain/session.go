package domain

import "time"

// Session is the resolved caller of a request. It is created at login,
// removed at logout and passed explicitly into every use case call.
type Session struct {
	ProfileID string    `json:"profile_id"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
