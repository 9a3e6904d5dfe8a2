package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"bank-console/internal/config"
	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"

	"github.com/stretchr/testify/suite"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   map[string]interface{}
}

type BackendClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	client   BackendClientInterface
	breaker  CircuitBreakerInterface
	mu       sync.Mutex
	requests []recordedRequest
	handler  http.HandlerFunc
}

func (s *BackendClientTestSuite) SetupTest() {
	s.requests = nil
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
		}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.Body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		handler := s.handler
		s.mu.Unlock()
		handler(w, r)
	}))

	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     2,
		ResetTimeout:    time.Hour,
		HalfOpenMaxSucc: 1,
	})
	s.client = NewBackendClient(
		&config.BackendConfig{BaseURL: s.server.URL, Timeout: 5 * time.Second},
		s.breaker,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *BackendClientTestSuite) TearDownTest() {
	s.server.Close()
}

func TestBackendClientSuite(t *testing.T) {
	suite.Run(t, new(BackendClientTestSuite))
}

func (s *BackendClientTestSuite) respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *BackendClientTestSuite) lastRequest() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *BackendClientTestSuite) TestListUsers_KeepsKeyOrder() {
	s.respond(http.StatusOK, `[{"username":"bob","id":2,"password":"x"},{"username":"amy","id":3}]`)

	users, err := s.client.ListUsers(context.Background(), "tok")
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal([]string{"username", "id", "password"}, users[0].Keys())
	s.Equal("2", users[0].ID())

	req := s.lastRequest()
	s.Equal(http.MethodGet, req.Method)
	s.Equal("/admin/users", req.Path)
	s.Equal("Bearer tok", req.Auth)
}

func (s *BackendClientTestSuite) TestListTransactions_NullBodyIsEmpty() {
	s.respond(http.StatusOK, `null`)

	txs, err := s.client.ListTransactions(context.Background(), "tok")
	s.Require().NoError(err)
	s.Empty(txs)
	s.Equal("/transactions/check", s.lastRequest().Path)
}

func (s *BackendClientTestSuite) TestListAdminRepayments_UsernameFilter() {
	s.respond(http.StatusOK, `[]`)

	_, err := s.client.ListAdminRepayments(context.Background(), "tok", "bob smith")
	s.Require().NoError(err)

	req := s.lastRequest()
	s.Equal("/repay/admin/repayments", req.Path)
	s.Equal("username=bob+smith", req.Query)

	_, err = s.client.ListAdminRepayments(context.Background(), "tok", "")
	s.Require().NoError(err)
	s.Empty(s.lastRequest().Query)
}

func (s *BackendClientTestSuite) TestStatusClassification() {
	testCases := []struct {
		name   string
		status int
		kind   consoleErrors.Kind
	}{
		{name: "not found", status: http.StatusNotFound, kind: consoleErrors.KindNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, kind: consoleErrors.KindAuth},
		{name: "forbidden", status: http.StatusForbidden, kind: consoleErrors.KindAuth},
		{name: "bad request", status: http.StatusBadRequest, kind: consoleErrors.KindTransient},
		{name: "server error", status: http.StatusInternalServerError, kind: consoleErrors.KindTransient},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.breaker.Reset()
			s.respond(tc.status, `{"message":"nope"}`)
			_, err := s.client.GetUser(context.Background(), "tok", "7")
			s.Require().Error(err)
			s.Equal(tc.kind, consoleErrors.KindOf(err))
			s.Equal("nope", BackendMessage(err))
		})
	}
}

func (s *BackendClientTestSuite) TestGetBalance_RawPayload() {
	s.respond(http.StatusOK, `150.5`)
	v, err := s.client.GetBalance(context.Background(), "tok", "7")
	s.Require().NoError(err)
	s.Equal(150.5, v)
	s.Equal("/admin/balance/7", s.lastRequest().Path)
}

func (s *BackendClientTestSuite) TestPatchBalance_Body() {
	err := s.client.PatchBalance(context.Background(), "tok", dto.PatchBalanceRequest{UserID: "7", Amount: 123.45})
	s.Require().NoError(err)

	req := s.lastRequest()
	s.Equal(http.MethodPatch, req.Method)
	s.Equal("/admin/balance/", req.Path)
	s.Equal("7", req.Body["userId"])
	s.Equal(123.45, req.Body["amount"])
}

func (s *BackendClientTestSuite) TestUpdateUser_SendsProfileFieldsOnly() {
	err := s.client.UpdateUser(context.Background(), "tok", "7", dto.UpdateProfileRequest{
		Username: "bob", Email: "bob@example.com", Mobile: "999", Role: "USER",
	})
	s.Require().NoError(err)

	req := s.lastRequest()
	s.Equal(http.MethodPut, req.Method)
	s.Equal("/admin/user/7", req.Path)
	s.Len(req.Body, 4)
	s.Equal("bob", req.Body["username"])
}

func (s *BackendClientTestSuite) TestWritesUseExpectedRoutes() {
	ctx := context.Background()

	s.Require().NoError(s.client.DeleteUser(ctx, "tok", "7"))
	s.Equal(recordedRequest{Method: http.MethodDelete, Path: "/admin/user/7", Auth: "Bearer tok"}, s.lastRequest())

	s.Require().NoError(s.client.DeleteAccount(ctx, "tok", "A1"))
	s.Equal("/admin/accounts/A1", s.lastRequest().Path)

	s.Require().NoError(s.client.ApproveLoan(ctx, "tok", "9"))
	s.Equal(http.MethodPost, s.lastRequest().Method)
	s.Equal("/loan/approve/9", s.lastRequest().Path)

	_, err := s.client.CreateRepayment(ctx, "tok", "9", 250)
	s.Require().NoError(err)
	s.Equal("/repay/repay/9", s.lastRequest().Path)
	s.Equal(float64(250), s.lastRequest().Body["amount"])
}

func (s *BackendClientTestSuite) TestToggleBlock_ReturnsMessage() {
	s.respond(http.StatusOK, `User blocked`)
	msg, err := s.client.ToggleBlock(context.Background(), "tok", "7")
	s.Require().NoError(err)
	s.Equal("User blocked", msg)
	s.Equal("/admin/block/7", s.lastRequest().Path)

	s.respond(http.StatusOK, ``)
	msg, err = s.client.ToggleBlock(context.Background(), "tok", "7")
	s.Require().NoError(err)
	s.Empty(msg)
}

func (s *BackendClientTestSuite) TestLogin_TokenOrAccessToken() {
	s.respond(http.StatusOK, `{"accessToken":"abc"}`)
	token, err := s.client.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "pw"})
	s.Require().NoError(err)
	s.Equal("abc", token)
	s.Empty(s.lastRequest().Auth)

	s.respond(http.StatusOK, `{"token":"xyz","accessToken":"abc"}`)
	token, err = s.client.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "pw"})
	s.Require().NoError(err)
	s.Equal("xyz", token)

	s.respond(http.StatusOK, `{}`)
	_, err = s.client.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "pw"})
	s.True(consoleErrors.IsAuth(err))
}

func (s *BackendClientTestSuite) TestSignup() {
	body := dto.SignupBody{Username: "carol", Password: "secret1", Email: "carol@example.com", Mobile: "98765"}

	s.respond(http.StatusOK, `User registered successfully`)
	msg, err := s.client.Signup(context.Background(), body)
	s.Require().NoError(err)
	s.Equal("User registered successfully", msg)

	last := s.lastRequest()
	s.Equal("/auth/signup", last.Path)
	s.Empty(last.Auth)
	s.Equal("carol", last.Body["username"])
	s.NotContains(last.Body, "confirmPassword")

	s.respond(http.StatusOK, `Username already exists`)
	_, err = s.client.Signup(context.Background(), body)
	ce, ok := consoleErrors.AsConsoleError(err)
	s.Require().True(ok)
	s.Equal(consoleErrors.AuthUserExists, ce.Code())
	s.Equal("Username already exists", ce.Message)
}

func (s *BackendClientTestSuite) TestPasswordRecoveryRoutes() {
	s.respond(http.StatusOK, ``)
	ctx := context.Background()

	s.Require().NoError(s.client.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "carol@example.com"}))
	s.Equal("/auth/forgot-password", s.lastRequest().Path)
	s.Equal("carol@example.com", s.lastRequest().Body["email"])

	s.Require().NoError(s.client.ResetPassword(ctx, dto.ResetPasswordBody{Email: "carol@example.com", OTP: "123456", NewPassword: "secret9"}))
	last := s.lastRequest()
	s.Equal("/auth/reset-password", last.Path)
	s.Equal("123456", last.Body["otp"])
	s.Equal("secret9", last.Body["newPassword"])

	s.respond(http.StatusBadRequest, `{"message":"Invalid OTP"}`)
	err := s.client.ResetPassword(ctx, dto.ResetPasswordBody{Email: "carol@example.com", OTP: "1", NewPassword: "secret9"})
	s.Require().Error(err)
	s.Equal("Invalid OTP", BackendMessage(err))
}

func (s *BackendClientTestSuite) TestCircuitBreakerFailsFast() {
	s.respond(http.StatusBadGateway, ``)
	ctx := context.Background()

	_, err := s.client.ListAccounts(ctx, "tok")
	s.Error(err)
	_, err = s.client.ListAccounts(ctx, "tok")
	s.Error(err)

	s.mu.Lock()
	calls := len(s.requests)
	s.mu.Unlock()

	_, err = s.client.ListAccounts(ctx, "tok")
	ce, ok := consoleErrors.AsConsoleError(err)
	s.Require().True(ok)
	s.Equal(consoleErrors.BackendCircuitOpen, ce.Code())
	s.ErrorIs(err, ErrCircuitBreakerOpen)

	s.mu.Lock()
	s.Equal(calls, len(s.requests))
	s.mu.Unlock()
}

func (s *BackendClientTestSuite) TestOversizedResponseIsRejected() {
	client := NewBackendClient(
		&config.BackendConfig{BaseURL: s.server.URL, Timeout: 5 * time.Second, MaxResponseBytes: 64},
		nil,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.respond(http.StatusOK, `[{"id":1,"note":"`+strings.Repeat("x", 100)+`"}]`)
	_, err := client.ListUsers(context.Background(), "tok")
	s.Require().Error(err)
	s.Equal(consoleErrors.KindTransient, consoleErrors.KindOf(err))

	s.respond(http.StatusOK, `[{"id":1}]`)
	users, err := client.ListUsers(context.Background(), "tok")
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *BackendClientTestSuite) TestTransportError() {
	s.server.Close()
	_, err := s.client.ListPendingLoans(context.Background(), "tok")
	s.Require().Error(err)
	s.Equal(consoleErrors.KindTransient, consoleErrors.KindOf(err))
}
