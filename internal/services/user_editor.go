package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/shopspring/decimal"
)

// profileFields are written back by SaveProfile, in merge order after the id
var profileFields = []string{"username", "email", "mobile", "role"}

// UserEditor is the search, edit and save workflow for one user record.
// The draft is a merge of the user profile and the separately fetched balance.
type UserEditor struct {
	mu           sync.Mutex
	session      *models.Session
	backend      BackendClientInterface
	alerts       AlerterInterface
	orchestrator OrchestratorInterface
	logger       ConsoleLoggerInterface
	recorder     actionRecorder
	state        models.EditorState
	draft        *models.Record
	userID       string
}

func NewUserEditor(session *models.Session, alerts AlerterInterface, orchestrator OrchestratorInterface, deps ConsoleDeps) *UserEditor {
	return &UserEditor{
		session:      session,
		backend:      deps.Backend,
		alerts:       alerts,
		orchestrator: orchestrator,
		logger:       deps.Logger,
		recorder:     newActionRecorder(session, deps),
		state:        models.EditorEmpty,
	}
}

func (e *UserEditor) setState(state models.EditorState) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}

func (e *UserEditor) current() (string, *models.Record) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userID, e.draft
}

// Search loads a user and their balance into a fresh draft
func (e *UserEditor) Search(ctx context.Context, raw interface{}) error {
	id, err := requireID(raw, "Enter a user ID")
	if err != nil {
		e.alerts.Show(models.AlertDanger, "Enter a user ID")
		return err
	}
	return e.load(ctx, id, false)
}

func (e *UserEditor) load(ctx context.Context, id string, quiet bool) error {
	if !quiet {
		e.setState(models.EditorSearching)
	}

	profile, err := e.backend.GetUser(ctx, e.session.Token, id)
	if err != nil {
		e.mu.Lock()
		if !quiet {
			e.state = models.EditorNotFound
			e.draft = nil
			e.userID = ""
		}
		e.mu.Unlock()
		e.alerts.Show(models.AlertDanger, "User not found")
		return consoleErrors.Relabel(err, "User not found")
	}

	balance, balanceErr := e.backend.GetBalance(ctx, e.session.Token, id)
	draft := mergeUser(id, profile, balance, balanceErr)

	e.mu.Lock()
	e.draft = draft
	e.userID = id
	e.state = models.EditorLoaded
	e.mu.Unlock()

	if !quiet {
		e.alerts.Show(models.AlertSuccess, "User loaded")
	}
	return nil
}

// mergeUser builds the draft: id, profile fields and balance first, then the
// remaining profile keys. The explicit fields win over profile duplicates.
func mergeUser(searchID string, profile *models.Record, balance interface{}, balanceErr error) *models.Record {
	draft := models.NewRecord()

	id := profile.ID()
	if id == "" {
		id = searchID
	}
	draft.Set("id", id)

	for _, key := range profileFields {
		v, ok := profile.Get(key)
		if !ok || v == nil {
			v = ""
		}
		draft.Set(key, v)
	}
	draft.Set("balance", resolveBalance(profile, balance, balanceErr))

	for _, key := range profile.Keys() {
		if _, taken := draft.Get(key); taken {
			continue
		}
		v, _ := profile.Get(key)
		draft.Set(key, v)
	}
	return draft
}

func isIdentityKey(key string) bool {
	switch key {
	case "id", "userId", "user_id", "accountId":
		return true
	}
	return false
}

// resolveBalance prefers a numeric balance endpoint payload and falls back to
// the profile balance, then to an empty value.
func resolveBalance(profile *models.Record, raw interface{}, err error) interface{} {
	if err == nil {
		if _, ok := models.AsFloat(raw); ok {
			return raw
		}
		if r, ok := raw.(*models.Record); ok && r != nil {
			v, found := r.Get("balance")
			if !found || v == nil {
				v, _ = r.Get("amount")
			}
			if _, ok := models.AsFloat(v); ok {
				return v
			}
		}
	}
	if v, ok := profile.Get("balance"); ok && v != nil {
		return v
	}
	return ""
}

// Draft returns a copy of the draft and the editor state
func (e *UserEditor) Draft() (*models.Record, models.EditorState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return nil, e.state
	}
	return e.draft.Clone(), e.state
}

// SetFields applies local edits to the draft. The id is fixed by the search.
func (e *UserEditor) SetFields(fields map[string]interface{}) error {
	for key := range fields {
		if isIdentityKey(key) {
			return consoleErrors.Validation("The user id cannot be edited", key).WithCode(consoleErrors.ValidationInvalidFormat)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return consoleErrors.Validation("Search for a user first").WithCode(consoleErrors.ConsoleNoDraft)
	}
	for key, v := range fields {
		e.draft.Set(key, v)
	}
	return nil
}

func (e *UserEditor) requireDraft() (string, *models.Record, error) {
	id, draft := e.current()
	if draft == nil {
		return "", nil, consoleErrors.Validation("Search for a user first").WithCode(consoleErrors.ConsoleNoDraft)
	}
	return id, draft, nil
}

// refreshActive re-fetches the first of the given lists that is on screen.
// Lists in the background are left alone so the active view never moves.
func (e *UserEditor) refreshActive(ctx context.Context, entities ...models.EntityType) {
	if e.orchestrator == nil {
		return
	}
	active := e.orchestrator.ActiveView()
	for _, entity := range entities {
		if entity == active {
			_ = e.orchestrator.Refresh(ctx, entity)
			return
		}
	}
}

// save runs a write for the loaded user, then reloads the draft and the
// affected list on success
func (e *UserEditor) save(ctx context.Context, action, id, success, failure string, metadata map[string]interface{},
	refresh []models.EntityType, call func(ctx context.Context) error) error {
	e.setState(models.EditorSaving)

	err := call(ctx)
	e.recorder.record(ctx, action, models.EntityUsers, id, err, metadata)
	if err != nil {
		e.setState(models.EditorSaveFailed)
		e.alerts.Show(models.AlertDanger, failure)
		return consoleErrors.Relabel(err, failure)
	}

	e.setState(models.EditorLoaded)
	e.alerts.Show(models.AlertSuccess, success)
	_ = e.load(ctx, id, true)
	e.refreshActive(ctx, refresh...)
	return nil
}

// SaveProfile sends the editable profile fields of the draft
func (e *UserEditor) SaveProfile(ctx context.Context) error {
	id, draft, err := e.requireDraft()
	if err != nil {
		return err
	}

	req := dto.UpdateProfileRequest{
		Username: draft.String("username"),
		Email:    draft.String("email"),
		Mobile:   draft.String("mobile"),
		Role:     draft.String("role"),
	}
	return e.save(ctx, models.AuditActionProfileUpdated, id, "User details updated", "Failed to update user details", nil,
		[]models.EntityType{models.EntityUsers},
		func(ctx context.Context) error {
			return e.backend.UpdateUser(ctx, e.session.Token, id, req)
		})
}

// SaveBalance sends the draft balance. It must be a plain decimal number.
func (e *UserEditor) SaveBalance(ctx context.Context) error {
	id, draft, err := e.requireDraft()
	if err != nil {
		return err
	}

	raw, _ := draft.Get("balance")
	amount, err := parseBalance(raw)
	if err != nil {
		e.alerts.Show(models.AlertDanger, "Enter a valid balance")
		e.logger.LogValidationFailure(ctx, "save_balance", err.Error())
		return consoleErrors.Validation("Enter a valid balance").WithCode(consoleErrors.ValidationInvalidAmount)
	}
	value, _ := amount.Float64()

	return e.save(ctx, models.AuditActionBalanceUpdated, id, "Balance updated", "Failed to update balance",
		map[string]interface{}{"amount": amount.String()},
		[]models.EntityType{models.EntityUsers, models.EntityAccounts},
		func(ctx context.Context) error {
			return e.backend.PatchBalance(ctx, e.session.Token, dto.PatchBalanceRequest{UserID: id, Amount: value})
		})
}

func parseBalance(raw interface{}) (decimal.Decimal, error) {
	if f, ok := models.AsFloat(raw); ok {
		return decimal.NewFromFloat(f), nil
	}
	s, ok := raw.(string)
	if !ok {
		return decimal.Zero, fmt.Errorf("balance is not a number: %v", raw)
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("balance is not a plain decimal: %q", s)
	}
	return decimal.NewFromString(s)
}

// RefreshBalance re-reads the balance of the loaded user into the draft
func (e *UserEditor) RefreshBalance(ctx context.Context) error {
	id, _, err := e.requireDraft()
	if err != nil {
		return err
	}

	balance, err := e.backend.GetBalance(ctx, e.session.Token, id)
	if err == nil {
		if _, ok := models.AsFloat(balance); !ok {
			err = fmt.Errorf("balance payload is not a number: %v", balance)
		}
	}
	if err != nil {
		e.alerts.Show(models.AlertDanger, "Failed to refresh balance")
		return consoleErrors.Relabel(err, "Failed to refresh balance")
	}

	e.mu.Lock()
	if e.draft != nil && e.userID == id {
		e.draft.Set("balance", balance)
	}
	e.mu.Unlock()
	e.alerts.Show(models.AlertSuccess, "Balance refreshed")
	return nil
}

// Delete removes a user after confirmation. raw falls back to the loaded user.
func (e *UserEditor) Delete(ctx context.Context, raw interface{}, confirmed bool) error {
	id := models.ResolveID(raw)
	if id == "" {
		id, _ = e.current()
	}
	if id == "" {
		e.alerts.Show(models.AlertDanger, "Enter a user ID")
		return consoleErrors.Validation("Enter a user ID").WithCode(consoleErrors.ValidationRequiredField)
	}
	if !confirmed {
		return consoleErrors.ConfirmationRequired(fmt.Sprintf("Delete user with ID %s? This is irreversible.", id))
	}

	err := e.backend.DeleteUser(ctx, e.session.Token, id)
	e.recorder.record(ctx, models.AuditActionUserDeleted, models.EntityUsers, id, err, nil)
	if err != nil {
		e.alerts.Show(models.AlertDanger, "Failed to delete user")
		return consoleErrors.Relabel(err, "Failed to delete user")
	}

	e.mu.Lock()
	if e.userID == id {
		e.draft = nil
		e.userID = ""
		e.state = models.EditorEmpty
	}
	e.mu.Unlock()

	e.alerts.Show(models.AlertSuccess, "User deleted")
	e.refreshActive(ctx, models.EntityUsers)
	return nil
}

// Cancel drops the draft without saving
func (e *UserEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = nil
	e.userID = ""
	e.state = models.EditorEmpty
}
