package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/repositories"

	"github.com/google/uuid"
)

const (
	LoginFailedMessage     = "Login failed. Check username/password or server."
	SessionNotFoundMessage = "Session not found, please log in again"
	DefaultSessionTTL      = 8 * time.Hour
)

// SessionService turns a backend login into a console session
type SessionService struct {
	backend BackendClientInterface
	tokens  TokenServiceInterface
	repo    repositories.SessionRepositoryInterface
	audit   AuditServiceInterface
	metrics MetricsRecorderInterface
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

// NewSessionService wires the session lifecycle. audit and metrics may be nil.
func NewSessionService(
	backend BackendClientInterface,
	tokens TokenServiceInterface,
	repo repositories.SessionRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	ttl time.Duration,
	logger *slog.Logger,
) SessionServiceInterface {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		backend: backend,
		tokens:  tokens,
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Login exchanges credentials for a backend token and stores a new session.
// Every failure reads "Login failed. Check username/password or server."
func (s *SessionService) Login(ctx context.Context, req dto.LoginRequest) (*models.Session, error) {
	token, err := s.backend.Login(ctx, req)
	if err != nil {
		s.loginFailed(ctx, req.Username, err)
		return nil, consoleErrors.Relabel(err, LoginFailedMessage)
	}

	claims, err := s.tokens.DecodeClaims(token)
	if err != nil {
		s.loginFailed(ctx, req.Username, err)
		return nil, consoleErrors.Auth(LoginFailedMessage, err).WithCode(consoleErrors.AuthInvalidTokenFormat)
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.New(),
		Token:     token,
		Subject:   claims.Subject,
		Role:      claims.ResolvedRole(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if session.Subject == "" {
		session.Subject = req.Username
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.After(now) && claims.ExpiresAt.Before(session.ExpiresAt) {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, consoleErrors.Transient(LoginFailedMessage, err).WithCode(consoleErrors.SystemServiceUnavailable)
	}

	s.logger.InfoContext(ctx, "console session created",
		"event_type", "session_created",
		"session_id", session.ID,
		"subject", session.Subject,
		"role", session.Role,
		"landing", session.LandingRoute())

	s.recordAuthEvent("login_success")
	if s.metrics != nil {
		s.metrics.IncrementCounter("session_created", nil)
	}
	if s.audit != nil {
		if err := s.audit.LogLogin(ctx, req.Username, session, nil); err != nil {
			s.logger.WarnContext(ctx, "failed to audit login", "error", err, "session_id", session.ID)
		}
	}

	return session, nil
}

func (s *SessionService) loginFailed(ctx context.Context, username string, err error) {
	s.logger.WarnContext(ctx, "console login failed",
		"event_type", "login_failed",
		"username", username,
		"error", err)

	s.recordAuthEvent("login_failure")
	if s.audit != nil {
		if auditErr := s.audit.LogLogin(ctx, username, nil, err); auditErr != nil {
			s.logger.WarnContext(ctx, "failed to audit login", "error", auditErr)
		}
	}
}

func (s *SessionService) recordAuthEvent(eventType string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
	}
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, consoleErrors.Auth(SessionNotFoundMessage, err).WithCode(consoleErrors.AuthSessionNotFound)
		}
		return nil, consoleErrors.Transient(SessionNotFoundMessage, err).WithCode(consoleErrors.SystemServiceUnavailable)
	}
	return session, nil
}

// Logout deletes the session. The caller discards the session's console.
func (s *SessionService) Logout(ctx context.Context, id uuid.UUID) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, repositories.ErrSessionNotFound) {
		return consoleErrors.Transient("Failed to log out", err).WithCode(consoleErrors.SystemServiceUnavailable)
	}

	s.logger.InfoContext(ctx, "console session deleted",
		"event_type", "session_deleted",
		"session_id", id,
		"subject", session.Subject)

	s.recordAuthEvent("logout")
	if s.metrics != nil {
		s.metrics.IncrementCounter("session_deleted", nil)
	}
	if s.audit != nil {
		if err := s.audit.LogLogout(ctx, session); err != nil {
			s.logger.WarnContext(ctx, "failed to audit logout", "error", err, "session_id", id)
		}
	}
	return nil
}

// ActiveSessions counts live sessions in the store
func (s *SessionService) ActiveSessions(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
