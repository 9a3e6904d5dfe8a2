package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicit login context handed to the console services.
// It is created on login and deleted on logout.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && IsAdminRole(s.Role)
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

func (s *Session) LandingRoute() string {
	if s == nil || s.Token == "" {
		return RouteLogin
	}
	return LandingRoute(s.Role)
}
