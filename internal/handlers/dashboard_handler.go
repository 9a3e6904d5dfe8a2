package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the user dashboard forms. The list screens of the
// dashboard go through a ConsoleHandler limited to the dashboard entities.
// Form rules are checked by the services so the alerts match the forms.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// CreateRepayment repays part of an approved loan
// @Summary Repay loan
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body dto.RepaymentRequest true "Repayment"
// @Success 201 {object} dto.ConsoleResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 or VALIDATION_005"
// @Router /dashboard/repayments [post]
func (h *DashboardHandler) CreateRepayment(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.RepaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result, err := console.Orchestrator.CreateRepayment(c.Request().Context(), req)
	if err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusCreated, console, result)
}

// Transfer moves money between accounts
// @Summary Transfer
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.ConsoleResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_007 - incorrect password"
// @Router /dashboard/transfer [post]
func (h *DashboardHandler) Transfer(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := console.Dashboard.Transfer(c.Request().Context(), req); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, nil)
}

// CheckLoan asks the backend for a loan decision
// @Summary Check loan eligibility
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body dto.LoanEligibilityRequest true "Loan form"
// @Success 200 {object} dto.ConsoleResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_*"
// @Router /dashboard/loans/check [post]
func (h *DashboardHandler) CheckLoan(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.LoanEligibilityRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result, err := console.Dashboard.CheckLoanEligibility(c.Request().Context(), req)
	if err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, result)
}

// ApplyLoan applies for a checked loan. The :id may be "latest" to use the
// last eligibility result.
// @Summary Apply for loan
// @Tags Dashboard
// @Produce json
// @Param id path string true "Eligibility ID or latest"
// @Success 200 {object} dto.ConsoleResponse
// @Router /dashboard/loans/{id}/apply [post]
func (h *DashboardHandler) ApplyLoan(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	id := c.Param("id")
	if id == "latest" {
		id = ""
	}

	result, err := console.Dashboard.ApplyLoan(c.Request().Context(), id)
	if err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, result)
}

// Loan returns the last eligibility or application result
// @Summary Loan form state
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.ConsoleResponse
// @Router /dashboard/loans [get]
func (h *DashboardHandler) Loan(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var data interface{}
	if eligibility := console.Dashboard.Eligibility(); eligibility != nil {
		data = eligibility
	}
	return sendConsole(c, http.StatusOK, console, data)
}

// ResetLoan clears the loan form
// @Summary Reset loan form
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.ConsoleResponse
// @Router /dashboard/loans [delete]
func (h *DashboardHandler) ResetLoan(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	console.Dashboard.ResetLoan()
	return sendConsole(c, http.StatusOK, console, nil)
}
