package services

import (
	"context"
	"log/slog"
	"time"

	"bank-console/internal/models"

	"github.com/google/uuid"
)

// ConsoleLogger provides structured logging for console operations
type ConsoleLogger struct {
	logger *slog.Logger
}

func NewConsoleLogger(logger *slog.Logger) ConsoleLoggerInterface {
	return &ConsoleLogger{
		logger: logger,
	}
}

func (cl *ConsoleLogger) LogFetchStarted(ctx context.Context, sessionID uuid.UUID, entity models.EntityType) {
	cl.logger.DebugContext(ctx, "console fetch started",
		slog.String("event_type", "fetch_started"),
		slog.String("session_id", sessionID.String()),
		slog.String("entity", string(entity)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogFetchCompleted(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, records int, durationMs int64) {
	cl.logger.InfoContext(ctx, "console fetch completed",
		slog.String("event_type", "fetch_completed"),
		slog.String("session_id", sessionID.String()),
		slog.String("entity", string(entity)),
		slog.Int("records", records),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogFetchFailed(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, errorMsg string, durationMs int64) {
	cl.logger.ErrorContext(ctx, "console fetch failed",
		slog.String("event_type", "fetch_failed"),
		slog.String("session_id", sessionID.String()),
		slog.String("entity", string(entity)),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogFetchSuperseded(ctx context.Context, sessionID uuid.UUID, entity models.EntityType) {
	cl.logger.InfoContext(ctx, "console fetch superseded",
		slog.String("event_type", "fetch_superseded"),
		slog.String("session_id", sessionID.String()),
		slog.String("entity", string(entity)),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogMutation logs a completed write. Failures are logged at error level.
func (cl *ConsoleLogger) LogMutation(ctx context.Context, sessionID uuid.UUID, action, resourceID, outcome, errorMsg string) {
	attrs := []slog.Attr{
		slog.String("event_type", "mutation"),
		slog.String("session_id", sessionID.String()),
		slog.String("action", action),
		slog.String("resource_id", resourceID),
		slog.String("outcome", outcome),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	}

	level := slog.LevelInfo
	if errorMsg != "" {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", errorMsg))
	}

	cl.logger.LogAttrs(ctx, level, "console mutation", attrs...)
}

func (cl *ConsoleLogger) LogExport(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, rows int) {
	cl.logger.InfoContext(ctx, "csv exported",
		slog.String("event_type", "csv_exported"),
		slog.String("session_id", sessionID.String()),
		slog.String("entity", string(entity)),
		slog.Int("rows", rows),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure stays at debug level; bad input is not an incident
func (cl *ConsoleLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	cl.logger.DebugContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAuditFailure reports an audit trail write that could not be stored
func (cl *ConsoleLogger) LogAuditFailure(ctx context.Context, sessionID uuid.UUID, action, errorMsg string) {
	cl.logger.WarnContext(ctx, "audit write failed",
		slog.String("event_type", "audit_failure"),
		slog.String("session_id", sessionID.String()),
		slog.String("action", action),
		slog.String("error", errorMsg),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ConsoleLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	cl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

// requestIDKey is the context key the request id middleware stores under
type requestIDKey struct{}

// WithRequestID returns a context carrying the request id for log correlation
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
