package services

import (
	"context"
	"sync"
	"time"

	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/google/uuid"
)

// ConsoleDeps are the shared collaborators of every session console.
// Audit and Metrics are optional.
type ConsoleDeps struct {
	Backend  BackendClientInterface
	Audit    AuditServiceInterface
	Logger   ConsoleLoggerInterface
	Metrics  MetricsRecorderInterface
	PageSize int
	AlertTTL time.Duration
}

// Console is the per-session state of the UI shell
type Console struct {
	Session      *models.Session
	Alerts       AlerterInterface
	Orchestrator OrchestratorInterface
	Editor       UserEditorInterface
	Dashboard    DashboardServiceInterface
}

func NewConsole(session *models.Session, deps ConsoleDeps) *Console {
	alerts := NewAlerter(deps.AlertTTL)
	orchestrator := NewOrchestrator(session, alerts, deps)
	return &Console{
		Session:      session,
		Alerts:       alerts,
		Orchestrator: orchestrator,
		Editor:       NewUserEditor(session, alerts, orchestrator, deps),
		Dashboard:    NewDashboardService(session, alerts, deps),
	}
}

// ConsoleRegistryInterface hands out the console of a session
type ConsoleRegistryInterface interface {
	For(session *models.Session) *Console
	Discard(id uuid.UUID)
	Len() int
}

// ConsoleRegistry creates consoles lazily, one per session id
type ConsoleRegistry struct {
	mu       sync.Mutex
	deps     ConsoleDeps
	consoles map[uuid.UUID]*Console
}

func NewConsoleRegistry(deps ConsoleDeps) *ConsoleRegistry {
	return &ConsoleRegistry{
		deps:     deps,
		consoles: make(map[uuid.UUID]*Console),
	}
}

func (r *ConsoleRegistry) For(session *models.Session) *Console {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.consoles[session.ID]; ok {
		return c
	}
	c := NewConsole(session, r.deps)
	r.consoles[session.ID] = c
	return c
}

func (r *ConsoleRegistry) Discard(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.consoles, id)
}

func (r *ConsoleRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// actionRecorder reports one console mutation to the log, metrics and the
// audit trail. Audit failures are logged and never fail the action.
type actionRecorder struct {
	session *models.Session
	logger  ConsoleLoggerInterface
	metrics MetricsRecorderInterface
	audit   AuditServiceInterface
}

func newActionRecorder(session *models.Session, deps ConsoleDeps) actionRecorder {
	return actionRecorder{
		session: session,
		logger:  deps.Logger,
		metrics: deps.Metrics,
		audit:   deps.Audit,
	}
}

func (r actionRecorder) record(ctx context.Context, action string, entity models.EntityType, resourceID string, err error, metadata map[string]interface{}) {
	outcome := models.AuditOutcomeSuccess
	errorMsg := ""
	if err != nil {
		outcome = models.AuditOutcomeFailure
		errorMsg = err.Error()
	}

	r.logger.LogMutation(ctx, r.session.ID, action, resourceID, outcome, errorMsg)

	if r.metrics != nil {
		r.metrics.IncrementCounter("console_mutation", map[string]string{
			"action": action,
			"status": outcome,
		})
	}

	if r.audit != nil {
		if auditErr := r.audit.LogAction(ctx, r.session, action, string(entity), resourceID, err, metadata); auditErr != nil {
			r.logger.LogAuditFailure(ctx, r.session.ID, action, auditErr.Error())
		}
	}
}

// requireID turns an empty resolved id into a validation failure
func requireID(raw interface{}, message string) (string, error) {
	id := models.ResolveID(raw)
	if id == "" {
		return "", consoleErrors.Validation(message).WithCode(consoleErrors.ValidationRequiredField)
	}
	return id, nil
}
