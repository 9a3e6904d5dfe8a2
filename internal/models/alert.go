package models

import "time"

// AlertKind selects how an alert is presented
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertDanger  AlertKind = "danger"
	AlertInfo    AlertKind = "info"
)

// Alert is a transient user-facing notice. A newer alert replaces an older one.
type Alert struct {
	Kind      AlertKind `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *Alert) Expired(now time.Time) bool {
	return a == nil || !now.Before(a.ExpiresAt)
}
