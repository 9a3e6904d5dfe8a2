package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"bank-console/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingLogger(level slog.Level) (*bytes.Buffer, ConsoleLoggerInterface) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level}))
	return &buf, NewConsoleLogger(logger)
}

func TestConsoleLogger_FetchFailedCarriesContext(t *testing.T) {
	buf, cl := newCapturingLogger(slog.LevelInfo)
	sessionID := uuid.New()
	ctx := WithRequestID(context.Background(), "req-1")

	cl.LogFetchFailed(ctx, sessionID, models.EntityUsers, "backend status 500", 12)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "fetch_failed", entry["event_type"])
	assert.Equal(t, sessionID.String(), entry["session_id"])
	assert.Equal(t, "users", entry["entity"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestConsoleLogger_ValidationIsDebugOnly(t *testing.T) {
	buf, cl := newCapturingLogger(slog.LevelInfo)
	cl.LogValidationFailure(context.Background(), "save_balance", "Enter a valid balance")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_MutationLevel(t *testing.T) {
	buf, cl := newCapturingLogger(slog.LevelInfo)
	cl.LogMutation(context.Background(), uuid.New(), "delete_account", "A1", models.AuditOutcomeFailure, "boom")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
}
