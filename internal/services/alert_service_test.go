package services

import (
	"testing"
	"time"

	"bank-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAlerter(now *time.Time) *Alerter {
	a := NewAlerter(2 * time.Second)
	a.now = func() time.Time { return *now }
	return a
}

func TestAlerter_ShowReplacesPending(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAlerter(&now)

	a.Show(models.AlertSuccess, "Users loaded")
	a.Show(models.AlertDanger, "Failed to load accounts")

	current := a.Current()
	require.NotNil(t, current)
	assert.Equal(t, models.AlertDanger, current.Kind)
	assert.Equal(t, "Failed to load accounts", current.Message)
}

func TestAlerter_Expires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAlerter(&now)

	a.Show(models.AlertInfo, "No users to export")
	now = now.Add(1999 * time.Millisecond)
	assert.NotNil(t, a.Current())

	now = now.Add(time.Millisecond)
	assert.Nil(t, a.Current())
}

func TestAlerter_Clear(t *testing.T) {
	a := NewAlerter(0)
	assert.Equal(t, DefaultAlertTTL, a.ttl)
	a.Show(models.AlertSuccess, "CSV exported")
	a.Clear()
	assert.Nil(t, a.Current())
}
