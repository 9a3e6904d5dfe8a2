package repositories

import (
	"context"
	"errors"
	"time"

	"bank-console/internal/models"

	"github.com/google/uuid"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSession   = errors.New("session must have an id")
)

// AuditLogFilter narrows an audit trail listing. Zero fields match everything.
type AuditLogFilter struct {
	Actor     string
	Action    string
	Entity    string
	Outcome   string
	SessionID *uuid.UUID
	Since     *time.Time
	Until     *time.Time
}

// AuditLogRepositoryInterface defines the contract for the console audit trail
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error)
	List(ctx context.Context, filter AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error)
	GetBySession(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(ctx context.Context, entity, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}

// SessionRepositoryInterface stores console sessions until logout or expiry
type SessionRepositoryInterface interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
