package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/validation"

	"github.com/shopspring/decimal"
)

// auditViewLimit caps the audit entries loaded into the audit view
const auditViewLimit = 500

type loaderFunc func(ctx context.Context, opts dto.FetchRequest) (models.Collection, error)

// entityView is the fetch state and table of one entity type
type entityView struct {
	state  models.FetchState
	table  *TableController
	opts   dto.FetchRequest
	gen    uint64
	cancel context.CancelFunc
}

// Orchestrator owns the entity collections of one console session. A fetch
// replaces its collection wholesale; a newer fetch of the same entity cancels
// the one in flight and the older response is dropped.
type Orchestrator struct {
	mu       sync.Mutex
	session  *models.Session
	backend  BackendClientInterface
	alerts   AlerterInterface
	exporter *CSVExporter
	logger   ConsoleLoggerInterface
	metrics  MetricsRecorderInterface
	audit    AuditServiceInterface
	recorder actionRecorder
	pageSize int
	views    map[models.EntityType]*entityView
	active   models.EntityType
}

func NewOrchestrator(session *models.Session, alerts AlerterInterface, deps ConsoleDeps) *Orchestrator {
	return &Orchestrator{
		session:  session,
		backend:  deps.Backend,
		alerts:   alerts,
		exporter: NewCSVExporter(),
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		audit:    deps.Audit,
		recorder: newActionRecorder(session, deps),
		pageSize: deps.PageSize,
		views:    make(map[models.EntityType]*entityView),
		active:   models.ViewHome,
	}
}

func (o *Orchestrator) loaderFor(entity models.EntityType) (loaderFunc, error) {
	if entity.IsAdminOnly() && !o.session.IsAdmin() {
		return nil, consoleErrors.Auth("Admin access required", nil).WithCode(consoleErrors.AuthInsufficientPermission)
	}

	token := o.session.Token
	list := func(fn func(ctx context.Context, token string) (models.Collection, error)) loaderFunc {
		return func(ctx context.Context, _ dto.FetchRequest) (models.Collection, error) {
			return fn(ctx, token)
		}
	}

	switch entity {
	case models.EntityTransactions:
		return list(o.backend.ListTransactions), nil
	case models.EntityUsers:
		return list(o.backend.ListUsers), nil
	case models.EntityAccounts:
		return list(o.backend.ListAccounts), nil
	case models.EntityLoans:
		return list(o.backend.ListPendingLoans), nil
	case models.EntityApprovedLoans:
		return list(o.backend.ListApprovedLoans), nil
	case models.EntityMyRepayments:
		return list(o.backend.ListRepayments), nil
	case models.EntityRepayments:
		return func(ctx context.Context, opts dto.FetchRequest) (models.Collection, error) {
			return o.backend.ListAdminRepayments(ctx, token, opts.Username)
		}, nil
	case models.EntityAudit:
		return o.loadAudit, nil
	}
	return nil, consoleErrors.Validation(fmt.Sprintf("Unknown console view %q", entity)).WithCode(consoleErrors.ConsoleUnknownEntity)
}

func (o *Orchestrator) loadAudit(ctx context.Context, _ dto.FetchRequest) (models.Collection, error) {
	if o.audit == nil {
		return nil, consoleErrors.Transient("Audit trail is disabled", nil).WithCode(consoleErrors.SystemServiceUnavailable)
	}
	logs, err := o.audit.Recent(ctx, auditViewLimit)
	if err != nil {
		return nil, err
	}
	c := make(models.Collection, 0, len(logs))
	for _, l := range logs {
		c = append(c, l.ToRecord())
	}
	return c, nil
}

// viewLocked returns the view of an entity, creating it Idle. Callers hold o.mu.
func (o *Orchestrator) viewLocked(entity models.EntityType) *entityView {
	v, ok := o.views[entity]
	if !ok {
		v = &entityView{state: models.FetchIdle, table: NewTableController(o.pageSize)}
		o.views[entity] = v
	}
	return v
}

func (o *Orchestrator) view(entity models.EntityType) *entityView {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewLocked(entity)
}

// Fetch loads an entity collection and makes it the active view
func (o *Orchestrator) Fetch(ctx context.Context, entity models.EntityType, opts dto.FetchRequest) error {
	return o.fetch(ctx, entity, opts, false)
}

// Refresh re-fetches an entity with its last options. A successful refresh
// keeps the pending alert so the outcome of the preceding action stays visible.
func (o *Orchestrator) Refresh(ctx context.Context, entity models.EntityType) error {
	o.mu.Lock()
	opts := o.viewLocked(entity).opts
	o.mu.Unlock()
	return o.fetch(ctx, entity, opts, true)
}

func (o *Orchestrator) fetch(ctx context.Context, entity models.EntityType, opts dto.FetchRequest, quiet bool) error {
	loader, err := o.loaderFor(entity)
	if err != nil {
		return err
	}

	o.mu.Lock()
	v := o.viewLocked(entity)
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = models.FetchLoading
	v.opts = opts
	o.mu.Unlock()
	defer cancel()

	o.logger.LogFetchStarted(ctx, o.session.ID, entity)
	start := time.Now()

	records, err := loader(fetchCtx, opts)
	elapsed := time.Since(start)

	o.mu.Lock()
	if v.gen != gen {
		o.mu.Unlock()
		o.logger.LogFetchSuperseded(ctx, o.session.ID, entity)
		o.count("console_fetch_superseded", entity, "")
		return consoleErrors.Conflict(fmt.Sprintf("Fetch of %s was superseded", entity.Label()))
	}
	v.cancel = nil

	if err != nil {
		v.state = models.FetchFailed
		o.mu.Unlock()

		msg := entity.FailedMessage()
		o.alerts.Show(models.AlertDanger, msg)
		o.logger.LogFetchFailed(ctx, o.session.ID, entity, err.Error(), elapsed.Milliseconds())
		o.count("console_fetch", entity, "failure")
		o.observe(elapsed)
		return consoleErrors.Relabel(err, msg)
	}

	v.table.SetCollection(records)
	v.state = models.FetchLoaded
	o.active = entity
	o.mu.Unlock()

	if !quiet {
		o.alerts.Show(models.AlertSuccess, entity.LoadedMessage())
	}
	o.logger.LogFetchCompleted(ctx, o.session.ID, entity, len(records), elapsed.Milliseconds())
	o.count("console_fetch", entity, "success")
	o.observe(elapsed)
	return nil
}

func (o *Orchestrator) count(name string, entity models.EntityType, status string) {
	if o.metrics == nil {
		return
	}
	o.metrics.IncrementCounter(name, map[string]string{"entity": string(entity), "status": status})
}

func (o *Orchestrator) observe(d time.Duration) {
	if o.metrics != nil {
		o.metrics.RecordProcessingTime("console_fetch", d)
	}
}

func (o *Orchestrator) State(entity models.EntityType) models.FetchState {
	o.mu.Lock()
	defer o.mu.Unlock()
	if v, ok := o.views[entity]; ok {
		return v.state
	}
	return models.FetchIdle
}

func (o *Orchestrator) ActiveView() models.EntityType {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

func (o *Orchestrator) Collection(entity models.EntityType) models.Collection {
	return o.view(entity).table.Collection()
}

// Table applies an optional query and page to the entity table and renders it.
// A non-nil query resets the page to 1 before page is applied.
func (o *Orchestrator) Table(entity models.EntityType, query *string, page int) dto.TablePage {
	v := o.view(entity)
	if query != nil {
		v.table.SetQuery(*query)
	}
	if page > 0 {
		v.table.SetPage(page)
	}
	return o.snapshot(entity, v)
}

func (o *Orchestrator) NextPage(entity models.EntityType) dto.TablePage {
	v := o.view(entity)
	v.table.NextPage()
	return o.snapshot(entity, v)
}

func (o *Orchestrator) PrevPage(entity models.EntityType) dto.TablePage {
	v := o.view(entity)
	v.table.PrevPage()
	return o.snapshot(entity, v)
}

func (o *Orchestrator) snapshot(entity models.EntityType, v *entityView) dto.TablePage {
	page := v.table.Snapshot()
	page.Entity = string(entity)
	page.State = string(o.State(entity))
	return page
}

// Export renders the loaded collection of an entity as CSV
func (o *Orchestrator) Export(ctx context.Context, entity models.EntityType) (*models.CSVExport, error) {
	if _, err := models.ParseEntityType(string(entity)); err != nil {
		return nil, consoleErrors.Validation(err.Error()).WithCode(consoleErrors.ConsoleUnknownEntity)
	}

	export, err := o.exporter.Export(entity, o.Collection(entity))
	if err != nil {
		if ce, ok := consoleErrors.AsConsoleError(err); ok {
			o.alerts.Show(models.AlertInfo, ce.Message)
		}
		return nil, err
	}

	o.alerts.Show(models.AlertSuccess, "CSV exported")
	o.logger.LogExport(ctx, o.session.ID, entity, export.Rows)
	if o.metrics != nil {
		o.metrics.IncrementCounter("csv_export", map[string]string{"entity": string(entity)})
		o.metrics.RecordGauge("csv_export_rows", float64(export.Rows), nil)
	}
	if o.audit != nil {
		if err := o.audit.LogAction(ctx, o.session, models.AuditActionExported, string(entity), "", nil,
			map[string]interface{}{"rows": export.Rows, "filename": export.Filename}); err != nil {
			o.logger.LogAuditFailure(ctx, o.session.ID, models.AuditActionExported, err.Error())
		}
	}
	return export, nil
}

// SearchAccountByUser loads the account of one user as a single-row accounts view
func (o *Orchestrator) SearchAccountByUser(ctx context.Context, raw interface{}) error {
	id, err := requireID(raw, "Enter a user ID for account search")
	if err != nil {
		o.alerts.Show(models.AlertDanger, "Enter a user ID for account search")
		return err
	}

	account, err := o.backend.GetAccount(ctx, o.session.Token, id)
	if err != nil {
		msg := "Account not found for that user ID"
		o.alerts.Show(models.AlertDanger, msg)
		return consoleErrors.Relabel(err, msg)
	}

	o.mu.Lock()
	v := o.viewLocked(models.EntityAccounts)
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.table.SetCollection(models.Collection{account})
	v.state = models.FetchLoaded
	o.active = models.EntityAccounts
	o.mu.Unlock()

	o.alerts.Show(models.AlertSuccess, "Account found")
	return nil
}

// mutate runs a backend write, reports it and then re-fetches the owning
// entity. The refresh starts only after the write has returned.
func (o *Orchestrator) mutate(ctx context.Context, action string, entity models.EntityType, resourceID, failure string,
	metadata map[string]interface{}, call func(ctx context.Context) (string, error)) error {
	msg, err := call(ctx)
	o.recorder.record(ctx, action, entity, resourceID, err, metadata)
	if err != nil {
		o.alerts.Show(models.AlertDanger, failure)
		return consoleErrors.Relabel(err, failure)
	}

	o.alerts.Show(models.AlertSuccess, msg)
	_ = o.Refresh(ctx, entity)
	return nil
}

func (o *Orchestrator) DeleteAccount(ctx context.Context, raw interface{}, confirmed bool) error {
	id, err := requireID(raw, "Enter an account ID")
	if err != nil {
		return err
	}
	if !confirmed {
		return consoleErrors.ConfirmationRequired(fmt.Sprintf("Delete bank account with ID %s? This is irreversible.", id))
	}

	return o.mutate(ctx, models.AuditActionAccountDeleted, models.EntityAccounts, id, "Failed to delete account", nil,
		func(ctx context.Context) (string, error) {
			return "Bank account deleted", o.backend.DeleteAccount(ctx, o.session.Token, id)
		})
}

func (o *Orchestrator) ToggleBlock(ctx context.Context, raw interface{}) error {
	id, err := requireID(raw, "Enter a user ID")
	if err != nil {
		return err
	}

	return o.mutate(ctx, models.AuditActionBlockToggled, models.EntityAccounts, id, "Failed to toggle block state", nil,
		func(ctx context.Context) (string, error) {
			msg, err := o.backend.ToggleBlock(ctx, o.session.Token, id)
			if msg == "" {
				msg = "Toggled block state"
			}
			return msg, err
		})
}

func (o *Orchestrator) ApproveLoan(ctx context.Context, raw interface{}, confirmed bool) error {
	id, err := requireID(raw, "Enter a loan ID")
	if err != nil {
		return err
	}
	if !confirmed {
		return consoleErrors.ConfirmationRequired(fmt.Sprintf("Approve loan #%s? This will credit the user's account.", id))
	}

	return o.mutate(ctx, models.AuditActionLoanApproved, models.EntityLoans, id, fmt.Sprintf("Failed to approve loan #%s", id), nil,
		func(ctx context.Context) (string, error) {
			return fmt.Sprintf("Approved loan #%s", id), o.backend.ApproveLoan(ctx, o.session.Token, id)
		})
}

// CreateRepayment repays part of an approved loan and reloads the repayment history
func (o *Orchestrator) CreateRepayment(ctx context.Context, req dto.RepaymentRequest) (*models.Record, error) {
	const missing = "Please select a loan and enter an amount."

	loanID := models.ResolveID(req.LoanID)
	failed := validation.GetValidator().FailedRules(req)
	if failed["required"] || loanID == "" {
		o.alerts.Show(models.AlertDanger, missing)
		return nil, consoleErrors.Validation(missing).WithCode(consoleErrors.ValidationRequiredField)
	}
	if failed["positive_amount"] {
		o.alerts.Show(models.AlertDanger, "Enter a valid amount")
		return nil, consoleErrors.Validation("Enter a valid amount").WithCode(consoleErrors.ValidationInvalidAmount)
	}
	amount := decimal.RequireFromString(strings.TrimSpace(req.Amount))
	value, _ := amount.Float64()

	var result *models.Record
	err := o.mutate(ctx, models.AuditActionRepaymentMade, models.EntityMyRepayments, loanID, "Repayment failed. Please try again.",
		map[string]interface{}{"amount": amount.String()},
		func(ctx context.Context) (string, error) {
			rec, err := o.backend.CreateRepayment(ctx, o.session.Token, loanID, value)
			if err != nil {
				return "", err
			}
			result = rec
			return "Repayment successful. Remaining balance: ₹" + rec.String("remainingBalance"), nil
		})
	if err != nil {
		if msg := BackendMessage(err); msg != "" {
			o.alerts.Show(models.AlertDanger, msg)
			return nil, consoleErrors.Relabel(err, msg)
		}
		return nil, err
	}
	return result, nil
}
