package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-console/internal/config"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops",
		"role": "ROLE_ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	str, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)
	return str
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Backend: config.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		Console: config.ConsoleConfig{PageSize: 12, AlertTTL: time.Second, SessionTTL: time.Hour},
	}
}

func backendStub(t *testing.T, loans string) *httptest.Server {
	token := adminToken(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"` + token + `"}`))
	})
	mux.HandleFunc("/loan/pending", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(loans))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExport_WritesCSV(t *testing.T) {
	backend := backendStub(t, `[{"id":1,"amount":500,"status":"PENDING"},{"id":2,"amount":75.5}]`)

	var out bytes.Buffer
	err := runExport(context.Background(), testConfig(backend.URL), discardLogger(),
		models.EntityLoans, exportOptions{username: "ops", password: "pw"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "id,amount,status\n1,500,\"PENDING\"\n2,75.5,\"\"", out.String())
}

func TestRunExport_EmptyCollection(t *testing.T) {
	backend := backendStub(t, `[]`)

	var out bytes.Buffer
	err := runExport(context.Background(), testConfig(backend.URL), discardLogger(),
		models.EntityLoans, exportOptions{username: "ops", password: "pw"}, &out)
	require.Error(t, err)

	ce, ok := consoleErrors.AsConsoleError(err)
	require.True(t, ok)
	assert.Equal(t, consoleErrors.ConsoleNothingToExport, ce.Code())
	assert.Empty(t, out.String())
}

func TestRunExport_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	err := runExport(context.Background(), testConfig(srv.URL), discardLogger(),
		models.EntityLoans, exportOptions{username: "ops", password: "bad"}, io.Discard)
	require.Error(t, err)
	assert.True(t, consoleErrors.IsAuth(err))
}
