package services

import (
	"context"
	"time"

	"bank-console/internal/dto"
	"bank-console/internal/models"
	"bank-console/internal/repositories"

	"github.com/google/uuid"
)

// BackendClientInterface is the banking REST backend as seen by the console.
// Every call carries the session bearer token.
type BackendClientInterface interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, error)
	Signup(ctx context.Context, req dto.SignupBody) (string, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordBody) error

	ListTransactions(ctx context.Context, token string) (models.Collection, error)
	ListUsers(ctx context.Context, token string) (models.Collection, error)
	GetUser(ctx context.Context, token, id string) (*models.Record, error)
	GetBalance(ctx context.Context, token, id string) (interface{}, error)
	ListAccounts(ctx context.Context, token string) (models.Collection, error)
	GetAccount(ctx context.Context, token, id string) (*models.Record, error)
	ListPendingLoans(ctx context.Context, token string) (models.Collection, error)
	ListApprovedLoans(ctx context.Context, token string) (models.Collection, error)
	ListRepayments(ctx context.Context, token string) (models.Collection, error)
	ListAdminRepayments(ctx context.Context, token, username string) (models.Collection, error)

	UpdateUser(ctx context.Context, token, id string, req dto.UpdateProfileRequest) error
	PatchBalance(ctx context.Context, token string, req dto.PatchBalanceRequest) error
	DeleteUser(ctx context.Context, token, id string) error
	DeleteAccount(ctx context.Context, token, id string) error
	ToggleBlock(ctx context.Context, token, userID string) (string, error)
	ApproveLoan(ctx context.Context, token, id string) error
	CreateRepayment(ctx context.Context, token, loanID string, amount float64) (*models.Record, error)

	Transfer(ctx context.Context, token string, req dto.TransferRequest) error
	CheckLoanEligibility(ctx context.Context, token string, req dto.LoanEligibilityRequest) (*models.Record, error)
	ApplyLoan(ctx context.Context, token, id string) (*models.Record, error)
}

// OrchestratorInterface owns the per-entity collections of one console session
type OrchestratorInterface interface {
	Fetch(ctx context.Context, entity models.EntityType, opts dto.FetchRequest) error
	Refresh(ctx context.Context, entity models.EntityType) error
	State(entity models.EntityType) models.FetchState
	ActiveView() models.EntityType
	Collection(entity models.EntityType) models.Collection
	Table(entity models.EntityType, query *string, page int) dto.TablePage
	NextPage(entity models.EntityType) dto.TablePage
	PrevPage(entity models.EntityType) dto.TablePage
	Export(ctx context.Context, entity models.EntityType) (*models.CSVExport, error)

	SearchAccountByUser(ctx context.Context, raw interface{}) error
	DeleteAccount(ctx context.Context, raw interface{}, confirmed bool) error
	ToggleBlock(ctx context.Context, raw interface{}) error
	ApproveLoan(ctx context.Context, raw interface{}, confirmed bool) error
	CreateRepayment(ctx context.Context, req dto.RepaymentRequest) (*models.Record, error)
}

// UserEditorInterface is the single-record edit-merge workflow
type UserEditorInterface interface {
	Search(ctx context.Context, raw interface{}) error
	Draft() (*models.Record, models.EditorState)
	SetFields(fields map[string]interface{}) error
	SaveProfile(ctx context.Context) error
	SaveBalance(ctx context.Context) error
	Delete(ctx context.Context, raw interface{}, confirmed bool) error
	RefreshBalance(ctx context.Context) error
	Cancel()
}

// DashboardServiceInterface covers the non-list actions of the user dashboard
type DashboardServiceInterface interface {
	Transfer(ctx context.Context, req dto.TransferRequest) error
	CheckLoanEligibility(ctx context.Context, req dto.LoanEligibilityRequest) (*models.Record, error)
	ApplyLoan(ctx context.Context, raw interface{}) (*models.Record, error)
	Eligibility() *models.Record
	ResetLoan()
}

type AlerterInterface interface {
	Show(kind models.AlertKind, message string)
	Current() *models.Alert
	Clear()
}

type SessionServiceInterface interface {
	Login(ctx context.Context, req dto.LoginRequest) (*models.Session, error)
	Signup(ctx context.Context, req dto.SignupRequest) (string, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Logout(ctx context.Context, id uuid.UUID) error
	ActiveSessions(ctx context.Context) (int, error)
}

type TokenServiceInterface interface {
	DecodeClaims(tokenString string) (*models.SessionClaims, error)
	ResolveRole(tokenString string) (string, error)
	LandingRoute(tokenString string) string
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// AuditServiceInterface defines the contract for the console audit trail
type AuditServiceInterface interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	LogLogin(ctx context.Context, username string, session *models.Session, loginErr error) error
	LogLogout(ctx context.Context, session *models.Session) error
	LogCredentialEvent(ctx context.Context, actor, action string, eventErr error) error
	LogAction(ctx context.Context, session *models.Session, action, entity, resourceID string, actionErr error, metadata map[string]interface{}) error
	Recent(ctx context.Context, limit int) ([]*models.AuditLog, error)
	Search(ctx context.Context, filter repositories.AuditLogFilter, offset, limit int) ([]*models.AuditLog, int64, error)
	ResourceHistory(ctx context.Context, entity, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	SessionHistory(ctx context.Context, sessionID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type ConsoleLoggerInterface interface {
	LogFetchStarted(ctx context.Context, sessionID uuid.UUID, entity models.EntityType)
	LogFetchCompleted(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, records int, durationMs int64)
	LogFetchFailed(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, errorMsg string, durationMs int64)
	LogFetchSuperseded(ctx context.Context, sessionID uuid.UUID, entity models.EntityType)
	LogMutation(ctx context.Context, sessionID uuid.UUID, action, resourceID, outcome, errorMsg string)
	LogExport(ctx context.Context, sessionID uuid.UUID, entity models.EntityType, rows int)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogAuditFailure(ctx context.Context, sessionID uuid.UUID, action, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
