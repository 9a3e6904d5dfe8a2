package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bank-console/internal/config"
	"bank-console/internal/handlers"
	"bank-console/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	backend *httptest.Server
	role    string
	server  *Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.role = "ROLE_ADMIN"

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  "ops",
			"role": s.role,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		str, err := token.SignedString([]byte("backend-key"))
		s.Require().NoError(err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"` + str + `"}`))
	})
	mux.HandleFunc("/admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"username":"amy"},{"id":2,"username":"bob"}]`))
	})
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["username"] == "amy" {
			_, _ = w.Write([]byte("Username already exists"))
			return
		}
		_, _ = w.Write([]byte("User registered successfully"))
	})
	s.backend = httptest.NewServer(mux)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Environment: "testing", CORSAllowOrigins: []string{"*"}},
		Backend: config.BackendConfig{
			BaseURL:                 s.backend.URL,
			Timeout:                 5 * time.Second,
			CircuitBreakerThreshold: 5,
			CircuitBreakerCooldown:  time.Minute,
		},
		Console: config.ConsoleConfig{PageSize: 12, AlertTTL: time.Second, SessionTTL: time.Hour},
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			Path:           "file:" + strings.ReplaceAll(s.T().Name(), "/", "_") + "?mode=memory&cache=shared",
			MaxConnections: 1,
			MaxIdleConns:   1,
			AuditEnabled:   true,
			AuditRetention: time.Hour,
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000},
	}

	srv, err := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.server = srv
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
	s.backend.Close()
}

func (s *ServerTestSuite) do(method, target, sessionID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(handlers.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) login() string {
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"ops","password":"pw"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	id := rec.Header().Get(handlers.SessionHeader)
	s.Require().NotEmpty(id)
	return id
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.login()
	rec := s.do(http.MethodGet, "/metrics", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "authentication_event")
}

func signupForm(username string) string {
	return `{"username":"` + username + `","password":"secret1","confirmPassword":"secret1","email":"x@example.com","mobile":"98765"}`
}

func (s *ServerTestSuite) TestSignupWithoutSession() {
	rec := s.do(http.MethodPost, "/api/v1/auth/signup", "", signupForm("carol"))
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), "User registered successfully")

	rec = s.do(http.MethodPost, "/api/v1/auth/signup", "", signupForm("amy"))
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_008")

	rec = s.do(http.MethodPost, "/api/v1/auth/signup", "",
		`{"username":"dan","password":"secret1","confirmPassword":"nope","email":"x@example.com","mobile":"98765"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestConsoleRequiresSession() {
	rec := s.do(http.MethodGet, "/api/v1/console/users", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), models.RouteLogin)
}

func (s *ServerTestSuite) TestAdminFetchAndPage() {
	id := s.login()

	rec := s.do(http.MethodPost, "/api/v1/console/users/fetch", id, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		View string `json:"view"`
		Data struct {
			Total int `json:"total"`
			Page  int `json:"page"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Data.Total)
	s.Equal(1, resp.Data.Page)

	rec = s.do(http.MethodGet, "/api/v1/console/users?q=bob", id, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"filteredTotal":1`)

	rec = s.do(http.MethodGet, "/api/v1/console/users/export", id, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "amy")
}

func (s *ServerTestSuite) TestUserSessionCannotReachAdminConsole() {
	s.role = "ROLE_USER"
	id := s.login()

	rec := s.do(http.MethodPost, "/api/v1/console/users/fetch", id, "")
	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), models.RouteUser)

	rec = s.do(http.MethodGet, "/api/v1/dashboard/approved-loans", id, "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestAuditTrailRecordsLogin() {
	id := s.login()

	rec := s.do(http.MethodGet, "/api/v1/audit?action=login", id, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"login"`)
}

func (s *ServerTestSuite) TestLogoutEndsSession() {
	id := s.login()

	rec := s.do(http.MethodPost, "/api/v1/auth/logout", id, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/console/alert", id, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestPruneAuditKeepsRecentEntries() {
	id := s.login()

	s.server.PruneAudit(context.Background())

	rec := s.do(http.MethodGet, "/api/v1/audit", id, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"login"`)
}
