package services

import (
	"context"
	"strings"
	"sync"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/validation"
)

const fillAllFieldsMessage = "Please fill all fields."

// DashboardService runs the transfer and loan forms of the user dashboard.
// It keeps the last eligibility result so a loan can be applied for.
type DashboardService struct {
	mu          sync.Mutex
	session     *models.Session
	backend     BackendClientInterface
	alerts      AlerterInterface
	logger      ConsoleLoggerInterface
	recorder    actionRecorder
	eligibility *models.Record
}

func NewDashboardService(session *models.Session, alerts AlerterInterface, deps ConsoleDeps) *DashboardService {
	return &DashboardService{
		session:  session,
		backend:  deps.Backend,
		alerts:   alerts,
		logger:   deps.Logger,
		recorder: newActionRecorder(session, deps),
	}
}

func (d *DashboardService) invalid(ctx context.Context, operation, message string, code consoleErrors.ErrorCode) error {
	d.alerts.Show(models.AlertDanger, message)
	d.logger.LogValidationFailure(ctx, operation, message)
	return consoleErrors.Validation(message).WithCode(code)
}

// failed alerts the backend's own message when it sent one
func (d *DashboardService) failed(err error, fallback string) error {
	msg := BackendMessage(err)
	if msg == "" {
		msg = fallback
	}
	d.alerts.Show(models.AlertDanger, msg)
	return consoleErrors.Relabel(err, msg)
}

// Transfer moves money between accounts. The backend re-checks the password
// and answers 401 or 403 when it does not match.
func (d *DashboardService) Transfer(ctx context.Context, req dto.TransferRequest) error {
	if len(validation.GetValidator().FailedRules(req)) > 0 || strings.TrimSpace(req.SenderAccount) == "" ||
		strings.TrimSpace(req.ReceiverAccount) == "" {
		return d.invalid(ctx, "transfer", fillAllFieldsMessage, consoleErrors.ValidationRequiredField)
	}

	err := d.backend.Transfer(ctx, d.session.Token, req)
	d.recorder.record(ctx, models.AuditActionTransferMade, models.EntityAccounts, req.SenderAccount, err,
		map[string]interface{}{"receiver": req.ReceiverAccount, "amount": req.Amount})
	if err != nil {
		if consoleErrors.IsAuth(err) {
			msg := consoleErrors.GetErrorMessage(consoleErrors.AuthIncorrectPassword)
			d.alerts.Show(models.AlertDanger, msg)
			return consoleErrors.Relabel(err, msg).WithCode(consoleErrors.AuthIncorrectPassword)
		}
		return d.failed(err, "Transfer failed")
	}

	d.alerts.Show(models.AlertSuccess, "Transfer completed successfully!")
	return nil
}

// CheckLoanEligibility validates the loan form and asks the backend for a
// decision. The username always comes from the session.
func (d *DashboardService) CheckLoanEligibility(ctx context.Context, req dto.LoanEligibilityRequest) (*models.Record, error) {
	const op = "check_loan"

	// checked in the order the loan form reports them
	failed := validation.GetValidator().FailedRules(req)
	switch {
	case failed["required"] || failed["positive_amount"]:
		return nil, d.invalid(ctx, op, fillAllFieldsMessage, consoleErrors.ValidationRequiredField)
	case req.RequestedAmount > req.Income*dto.MaxIncomeMultiple:
		return nil, d.invalid(ctx, op, "Requested amount cannot exceed 2× your monthly income.", consoleErrors.ValidationOutOfRange)
	case failed["credit_score"]:
		return nil, d.invalid(ctx, op, "Credit score cannot exceed 800.", consoleErrors.ValidationOutOfRange)
	case failed["aadhaar_number"]:
		return nil, d.invalid(ctx, op, "Aadhar number must be at least 12 characters.", consoleErrors.ValidationInvalidFormat)
	case failed["pan_number"]:
		return nil, d.invalid(ctx, op, "PAN number must be exactly 10 characters.", consoleErrors.ValidationInvalidFormat)
	}

	req.Username = d.session.Subject
	if req.Username == "" {
		d.alerts.Show(models.AlertDanger, "Please log in first")
		return nil, consoleErrors.Auth("Please log in first", nil).WithCode(consoleErrors.AuthMissingToken)
	}

	result, err := d.backend.CheckLoanEligibility(ctx, d.session.Token, req)
	if err != nil {
		return nil, d.failed(err, "Error checking eligibility")
	}

	d.mu.Lock()
	d.eligibility = result
	d.mu.Unlock()
	return result.Clone(), nil
}

// ApplyLoan applies for the loan behind an eligibility result. An empty raw
// id uses the last eligibility check.
func (d *DashboardService) ApplyLoan(ctx context.Context, raw interface{}) (*models.Record, error) {
	id := models.ResolveID(raw)
	if id == "" {
		d.mu.Lock()
		if d.eligibility != nil {
			id = d.eligibility.ID()
		}
		d.mu.Unlock()
	}
	if id == "" {
		return nil, d.invalid(ctx, "apply_loan", "Please check eligibility first", consoleErrors.ValidationRequiredField)
	}

	result, err := d.backend.ApplyLoan(ctx, d.session.Token, id)
	d.recorder.record(ctx, models.AuditActionLoanApplied, models.EntityApprovedLoans, id, err, nil)
	if err != nil {
		return nil, d.failed(err, "Error applying for loan")
	}

	d.mu.Lock()
	d.eligibility = result
	d.mu.Unlock()
	d.alerts.Show(models.AlertSuccess, "Loan Application Submitted Successfully!")
	return result.Clone(), nil
}

// Eligibility returns the last eligibility or application result
func (d *DashboardService) Eligibility() *models.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.eligibility == nil {
		return nil
	}
	return d.eligibility.Clone()
}

// ResetLoan clears the loan form state
func (d *DashboardService) ResetLoan() {
	d.mu.Lock()
	d.eligibility = nil
	d.mu.Unlock()
}
