package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bank-console/internal/config"
	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
)

// defaultMaxResponseBytes caps a backend response body when the config leaves it unset
const defaultMaxResponseBytes = 10 << 20

// JSONTransport sets the JSON headers every backend call needs
type JSONTransport struct {
	base http.RoundTripper
}

func (t *JSONTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if req.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

// BackendClient calls the banking REST backend
type BackendClient struct {
	config  *config.BackendConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewBackendClient creates a backend client. A nil breaker disables fail-fast.
func NewBackendClient(
	cfg *config.BackendConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BackendClientInterface {

	client := &http.Client{
		Transport: &JSONTransport{base: http.DefaultTransport},
		Timeout:   cfg.Timeout,
	}

	return &BackendClient{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *BackendClient) buildRequest(
	ctx context.Context,
	method, path, token string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		s.config.BaseURL+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do sends the request and classifies the outcome. A nil error means a 2xx
// response whose body is returned.
func (s *BackendClient) do(req *http.Request, operation string) ([]byte, error) {
	if s.breaker != nil && s.breaker.IsOpen() {
		s.recordCall(operation, "circuit_open", 0)
		return nil, consoleErrors.Transient(
			consoleErrors.GetErrorMessage(consoleErrors.BackendCircuitOpen),
			ErrCircuitBreakerOpen,
		).WithCode(consoleErrors.BackendCircuitOpen)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		if req.Context().Err() == nil {
			s.recordFailure()
		}
		s.recordCall(operation, "transport_error", time.Since(start))
		s.logger.ErrorContext(req.Context(),
			"backend request failed",
			"operation", operation,
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, consoleErrors.Transient(consoleErrors.GetErrorMessage(consoleErrors.BackendUnavailable), err)
	}

	limit := s.config.MaxResponseBytes
	if limit <= 0 {
		limit = defaultMaxResponseBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	resp.Body.Close()
	if err != nil {
		s.recordFailure()
		return nil, consoleErrors.Transient("read response body", err)
	}
	if int64(len(body)) > limit {
		s.recordCall(operation, "too_large", time.Since(start))
		s.logger.ErrorContext(req.Context(),
			"backend response exceeds size limit",
			"operation", operation,
			"path", req.URL.Path,
			"limit", limit,
		)
		return nil, consoleErrors.Transient(
			consoleErrors.GetErrorMessage(consoleErrors.BackendUnavailable),
			fmt.Errorf("response body larger than %d bytes", limit),
		)
	}

	s.recordCall(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode >= 500 {
		s.recordFailure()
	} else if s.breaker != nil {
		s.breaker.RecordSuccess()
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	s.logger.WarnContext(req.Context(),
		"backend returned error status",
		"operation", operation,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
	)

	return nil, classifyStatus(resp.StatusCode, body)
}

func (s *BackendClient) recordFailure() {
	if s.breaker != nil {
		s.breaker.RecordFailure()
	}
}

func (s *BackendClient) recordCall(operation, status string, d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("backend_request", map[string]string{
		"operation": operation,
		"status":    status,
	})
	if d > 0 {
		s.metrics.RecordProcessingTime("backend_request", d)
	}
}

// StatusError carries a non-2xx backend response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend status %d: %s", e.StatusCode, e.Body)
}

// classifyStatus maps 404 to not-found, 401/403 to auth, anything else to transient
func classifyStatus(status int, body []byte) error {
	cause := &StatusError{StatusCode: status, Body: strings.TrimSpace(string(body))}
	switch status {
	case http.StatusNotFound:
		return consoleErrors.NotFound(consoleErrors.GetErrorMessage(consoleErrors.BackendNotFound), cause)
	case http.StatusUnauthorized, http.StatusForbidden:
		return consoleErrors.Auth(consoleErrors.GetErrorMessage(consoleErrors.BackendUnauthorized), cause)
	default:
		return consoleErrors.Transient(consoleErrors.GetErrorMessage(consoleErrors.BackendUnavailable), cause)
	}
}

func (s *BackendClient) call(ctx context.Context, method, path, token, operation string, body any) ([]byte, error) {
	req, err := s.buildRequest(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	return s.do(req, operation)
}

func (s *BackendClient) list(ctx context.Context, path, token, operation string) (models.Collection, error) {
	body, err := s.call(ctx, http.MethodGet, path, token, operation, nil)
	if err != nil {
		return nil, err
	}
	c, err := models.DecodeCollection(body)
	if err != nil {
		return nil, consoleErrors.Transient("decode "+operation+" response", err)
	}
	return c, nil
}

func (s *BackendClient) record(ctx context.Context, method, path, token, operation string, payload any) (*models.Record, error) {
	body, err := s.call(ctx, method, path, token, operation, payload)
	if err != nil {
		return nil, err
	}
	v, err := models.DecodeValue(body)
	if err != nil {
		return nil, consoleErrors.Transient("decode "+operation+" response", err)
	}
	switch t := v.(type) {
	case *models.Record:
		return t, nil
	case nil:
		return models.NewRecord(), nil
	default:
		return models.RecordOf("value", t), nil
	}
}

func escape(id string) string {
	return url.PathEscape(id)
}

func (s *BackendClient) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	body, err := s.call(ctx, http.MethodPost, "/auth/login", "", "login", req)
	if err != nil {
		return "", err
	}

	var resp dto.BackendLoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", consoleErrors.Auth("No token returned", err)
	}
	token := resp.BearerToken()
	if token == "" {
		return "", consoleErrors.Auth("No token returned", nil)
	}
	return token, nil
}

// Signup registers a customer and returns the backend's message. The backend
// answers a duplicate username with 200 and an "already exists" message.
func (s *BackendClient) Signup(ctx context.Context, req dto.SignupBody) (string, error) {
	body, err := s.call(ctx, http.MethodPost, "/auth/signup", "", "signup", req)
	if err != nil {
		return "", err
	}
	msg := messageFromBody(body)
	if strings.Contains(strings.ToLower(msg), "already exists") {
		return "", consoleErrors.Conflict(msg).WithCode(consoleErrors.AuthUserExists)
	}
	return msg, nil
}

func (s *BackendClient) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	_, err := s.call(ctx, http.MethodPost, "/auth/forgot-password", "", "forgot_password", req)
	return err
}

func (s *BackendClient) ResetPassword(ctx context.Context, req dto.ResetPasswordBody) error {
	_, err := s.call(ctx, http.MethodPost, "/auth/reset-password", "", "reset_password", req)
	return err
}

func (s *BackendClient) ListTransactions(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/transactions/check", token, "list_transactions")
}

func (s *BackendClient) ListUsers(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/admin/users", token, "list_users")
}

func (s *BackendClient) GetUser(ctx context.Context, token, id string) (*models.Record, error) {
	return s.record(ctx, http.MethodGet, "/admin/user/"+escape(id), token, "get_user", nil)
}

// GetBalance returns the raw decoded balance payload: a number, an object
// carrying balance/amount, or whatever else the backend sent.
func (s *BackendClient) GetBalance(ctx context.Context, token, id string) (interface{}, error) {
	body, err := s.call(ctx, http.MethodGet, "/admin/balance/"+escape(id), token, "get_balance", nil)
	if err != nil {
		return nil, err
	}
	v, err := models.DecodeValue(body)
	if err != nil {
		return nil, consoleErrors.Transient("decode get_balance response", err)
	}
	return v, nil
}

func (s *BackendClient) ListAccounts(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/admin/accounts", token, "list_accounts")
}

func (s *BackendClient) GetAccount(ctx context.Context, token, id string) (*models.Record, error) {
	return s.record(ctx, http.MethodGet, "/admin/accounts/"+escape(id), token, "get_account", nil)
}

func (s *BackendClient) ListPendingLoans(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/loan/pending", token, "list_pending_loans")
}

func (s *BackendClient) ListApprovedLoans(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/repay/user/approved", token, "list_approved_loans")
}

func (s *BackendClient) ListRepayments(ctx context.Context, token string) (models.Collection, error) {
	return s.list(ctx, "/repay/repayments", token, "list_repayments")
}

func (s *BackendClient) ListAdminRepayments(ctx context.Context, token, username string) (models.Collection, error) {
	path := "/repay/admin/repayments"
	if username != "" {
		path += "?username=" + url.QueryEscape(username)
	}
	return s.list(ctx, path, token, "list_admin_repayments")
}

func (s *BackendClient) UpdateUser(ctx context.Context, token, id string, req dto.UpdateProfileRequest) error {
	_, err := s.call(ctx, http.MethodPut, "/admin/user/"+escape(id), token, "update_user", req)
	return err
}

func (s *BackendClient) PatchBalance(ctx context.Context, token string, req dto.PatchBalanceRequest) error {
	_, err := s.call(ctx, http.MethodPatch, "/admin/balance/", token, "patch_balance", req)
	return err
}

func (s *BackendClient) DeleteUser(ctx context.Context, token, id string) error {
	_, err := s.call(ctx, http.MethodDelete, "/admin/user/"+escape(id), token, "delete_user", nil)
	return err
}

func (s *BackendClient) DeleteAccount(ctx context.Context, token, id string) error {
	_, err := s.call(ctx, http.MethodDelete, "/admin/accounts/"+escape(id), token, "delete_account", nil)
	return err
}

// ToggleBlock flips the blocked flag and returns the backend's message, if any
func (s *BackendClient) ToggleBlock(ctx context.Context, token, userID string) (string, error) {
	body, err := s.call(ctx, http.MethodPatch, "/admin/block/"+escape(userID), token, "toggle_block", nil)
	if err != nil {
		return "", err
	}
	return messageFromBody(body), nil
}

func (s *BackendClient) ApproveLoan(ctx context.Context, token, id string) error {
	_, err := s.call(ctx, http.MethodPost, "/loan/approve/"+escape(id), token, "approve_loan", nil)
	return err
}

func (s *BackendClient) CreateRepayment(ctx context.Context, token, loanID string, amount float64) (*models.Record, error) {
	return s.record(ctx, http.MethodPost, "/repay/repay/"+escape(loanID), token, "create_repayment", dto.RepaymentBody{Amount: amount})
}

func (s *BackendClient) Transfer(ctx context.Context, token string, req dto.TransferRequest) error {
	_, err := s.call(ctx, http.MethodPost, "/transfer/transfer", token, "transfer", req)
	return err
}

func (s *BackendClient) CheckLoanEligibility(ctx context.Context, token string, req dto.LoanEligibilityRequest) (*models.Record, error) {
	return s.record(ctx, http.MethodPost, "/loan/check", token, "check_loan", req)
}

func (s *BackendClient) ApplyLoan(ctx context.Context, token, id string) (*models.Record, error) {
	return s.record(ctx, http.MethodPost, "/loan/apply/"+escape(id), token, "apply_loan", nil)
}

// messageFromBody reads a plain-text or JSON-string body as a message
func messageFromBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	v, err := models.DecodeValue(body)
	if err != nil {
		return text
	}
	if s, ok := v.(string); ok {
		return s
	}
	if r, ok := v.(*models.Record); ok {
		for _, key := range []string{"message", "error"} {
			if msg := r.String(key); msg != "" {
				return msg
			}
		}
	}
	return models.Scalarize(v)
}

// BackendMessage extracts the backend's response text from a status error
func BackendMessage(err error) string {
	var se *StatusError
	if !errors.As(err, &se) {
		return ""
	}
	return messageFromBody([]byte(se.Body))
}
