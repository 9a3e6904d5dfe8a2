package services

import (
	"context"
	"errors"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
)

const (
	SignupFailedMessage         = "Signup failed. Please try again."
	ForgotPasswordFailedMessage = "Failed to send OTP. Try again."
	ResetPasswordFailedMessage  = "Reset failed. Check OTP and try again."
)

// Signup forwards a registration to the backend and returns its message.
// A duplicate username comes back as a conflict carrying the backend text.
func (s *SessionService) Signup(ctx context.Context, req dto.SignupRequest) (string, error) {
	msg, err := s.backend.Signup(ctx, req.Body())
	s.credentialEvent(ctx, req.Username, models.AuditActionSignup, "signup", err)
	if err != nil {
		if consoleErrors.KindOf(err) == consoleErrors.KindConflict {
			return "", err
		}
		return "", relabelRejected(err, SignupFailedMessage)
	}
	return msg, nil
}

// ForgotPassword asks the backend to mail a reset OTP to the address
func (s *SessionService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	err := s.backend.ForgotPassword(ctx, req)
	s.credentialEvent(ctx, req.Email, models.AuditActionPasswordResetRequested, "forgot_password", err)
	if err != nil {
		return relabelRejected(err, ForgotPasswordFailedMessage)
	}
	return nil
}

// ResetPassword sets a new password with the OTP from ForgotPassword
func (s *SessionService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	err := s.backend.ResetPassword(ctx, req.Body())
	s.credentialEvent(ctx, req.Email, models.AuditActionPasswordReset, "reset_password", err)
	if err != nil {
		return relabelRejected(err, ResetPasswordFailedMessage)
	}
	return nil
}

func (s *SessionService) credentialEvent(ctx context.Context, actor, action, event string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
		s.logger.WarnContext(ctx, "credential request failed",
			"event_type", event,
			"actor", actor,
			"error", err)
	} else {
		s.logger.InfoContext(ctx, "credential request completed",
			"event_type", event,
			"actor", actor)
	}

	s.recordAuthEvent(event + "_" + outcome)
	if s.audit != nil {
		if auditErr := s.audit.LogCredentialEvent(ctx, actor, action, err); auditErr != nil {
			s.logger.WarnContext(ctx, "failed to audit credential request", "error", auditErr, "event_type", event)
		}
	}
}

// relabelRejected reports a backend 4xx on an anonymous request as a
// validation error. Other failures keep their kind.
func relabelRejected(err error, message string) error {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
		rejected := consoleErrors.Validation(message)
		if detail := BackendMessage(err); detail != "" {
			rejected.Details = []string{detail}
		}
		rejected.Err = err
		return rejected
	}
	return consoleErrors.Relabel(err, message)
}
