package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-console/internal/models"
	"bank-console/internal/repositories"

	"github.com/google/uuid"
)

const (
	// AuditEntitySession is the audit entity of login and logout entries
	AuditEntitySession = "session"
	// AuditEntityCredentials covers signup and password recovery entries
	AuditEntityCredentials = "credentials"
)

// AuditService writes and reads the console audit trail
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidAuditLog  = errors.New("invalid audit log")
	ErrInvalidSessionID = errors.New("invalid session ID")
	ErrAuditDateRange   = errors.New("invalid date range: start date must be before end date")
)

var validAuditActions = map[string]bool{
	models.AuditActionLogin:                  true,
	models.AuditActionLogout:                 true,
	models.AuditActionProfileUpdated:         true,
	models.AuditActionBalanceUpdated:         true,
	models.AuditActionUserDeleted:            true,
	models.AuditActionAccountDeleted:         true,
	models.AuditActionBlockToggled:           true,
	models.AuditActionLoanApproved:           true,
	models.AuditActionLoanApplied:            true,
	models.AuditActionRepaymentMade:          true,
	models.AuditActionTransferMade:           true,
	models.AuditActionExported:               true,
	models.AuditActionSignup:                 true,
	models.AuditActionPasswordResetRequested: true,
	models.AuditActionPasswordReset:          true,
}

// ValidateAction checks the action against the known console actions
func ValidateAction(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("invalid audit action: %s", action)
	}
	return nil
}

func (s *AuditService) Record(ctx context.Context, entry *models.AuditLog) error {
	if entry == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateAction(entry.Action); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func sessionEntry(session *models.Session, action, entity, resourceID string) *models.AuditLog {
	entry := &models.AuditLog{
		Action:     action,
		Entity:     entity,
		ResourceID: resourceID,
		Outcome:    models.AuditOutcomeSuccess,
	}
	if session != nil {
		id := session.ID
		entry.SessionID = &id
		entry.Actor = session.Subject
		entry.Role = session.Role
	}
	return entry
}

func outcomeOf(entry *models.AuditLog, err error) {
	if err != nil {
		entry.Outcome = models.AuditOutcomeFailure
		entry.SetMetadata("error", err.Error())
	}
}

// LogLogin records a login attempt. Failed attempts carry no session.
func (s *AuditService) LogLogin(ctx context.Context, username string, session *models.Session, loginErr error) error {
	entry := sessionEntry(session, models.AuditActionLogin, AuditEntitySession, "")
	if entry.Actor == "" {
		entry.Actor = username
	}
	outcomeOf(entry, loginErr)
	return s.Record(ctx, entry)
}

// LogCredentialEvent records a signup or password recovery step. These run
// before any session exists, so actor is the username or email supplied.
func (s *AuditService) LogCredentialEvent(ctx context.Context, actor, action string, eventErr error) error {
	entry := sessionEntry(nil, action, AuditEntityCredentials, "")
	entry.Actor = actor
	outcomeOf(entry, eventErr)
	return s.Record(ctx, entry)
}

func (s *AuditService) LogLogout(ctx context.Context, session *models.Session) error {
	return s.Record(ctx, sessionEntry(session, models.AuditActionLogout, AuditEntitySession, ""))
}

// LogAction records one mutation or export performed through the console
func (s *AuditService) LogAction(ctx context.Context, session *models.Session, action, entity, resourceID string, actionErr error, metadata map[string]interface{}) error {
	entry := sessionEntry(session, action, entity, resourceID)
	for k, v := range metadata {
		entry.SetMetadata(k, v)
	}
	outcomeOf(entry, actionErr)
	return s.Record(ctx, entry)
}

func (s *AuditService) Recent(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	logs, _, err := s.repo.List(ctx, repositories.AuditLogFilter{}, 0, limit)
	return logs, err
}

func (s *AuditService) Search(ctx context.Context, filter repositories.AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error) {
	if filter.Since != nil && filter.Until != nil && filter.Since.After(*filter.Until) {
		return nil, 0, ErrAuditDateRange
	}
	return s.repo.List(ctx, filter, offset, limit)
}

func (s *AuditService) ResourceHistory(ctx context.Context, entity, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return s.repo.GetByResource(ctx, entity, resourceID, offset, limit)
}

func (s *AuditService) SessionHistory(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if sessionID == uuid.Nil {
		return nil, 0, ErrInvalidSessionID
	}
	return s.repo.GetBySession(ctx, sessionID, offset, limit)
}

// Prune deletes entries older than the retention; zero keeps everything
func (s *AuditService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	return s.repo.DeleteOlderThan(ctx, retention)
}
