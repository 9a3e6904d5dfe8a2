package services

import (
	"sync"
	"time"

	"bank-console/internal/models"
)

// DefaultAlertTTL is how long an alert stays visible
const DefaultAlertTTL = 2 * time.Second

// Alerter holds the single alert slot of a console session
type Alerter struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	current *models.Alert
}

func NewAlerter(ttl time.Duration) *Alerter {
	if ttl <= 0 {
		ttl = DefaultAlertTTL
	}
	return &Alerter{ttl: ttl, now: time.Now}
}

// Show replaces any pending alert
func (a *Alerter) Show(kind models.AlertKind, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = &models.Alert{
		Kind:      kind,
		Message:   message,
		ExpiresAt: a.now().Add(a.ttl),
	}
}

// Current returns a copy of the pending alert, or nil once it has expired
func (a *Alerter) Current() *models.Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current.Expired(a.now()) {
		a.current = nil
		return nil
	}
	cp := *a.current
	return &cp
}

func (a *Alerter) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
}
