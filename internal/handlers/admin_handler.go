package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the row actions of the admin list screens
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// SearchAccount loads the account of one user as the accounts view
// @Summary Search account by user
// @Tags Admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Failure 404 {object} errors.ErrorResponse "BACKEND_001"
// @Router /console/accounts/search/{userId} [get]
func (h *AdminHandler) SearchAccount(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Orchestrator.SearchAccountByUser(c.Request().Context(), c.Param("userId")); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(models.EntityAccounts, nil, 0))
}

// DeleteAccount deletes a bank account. Without confirm=true the response is
// 428 with the confirmation prompt as the message.
// @Summary Delete account
// @Tags Admin
// @Produce json
// @Param id path string true "Account ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Failure 428 {object} errors.ErrorResponse "CONSOLE_002"
// @Router /console/accounts/{id} [delete]
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Orchestrator.DeleteAccount(c.Request().Context(), c.Param("id"), isConfirmed(c)); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(models.EntityAccounts, nil, 0))
}

// ToggleBlock flips the blocked flag of a user's account
// @Summary Toggle account block
// @Tags Admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Router /console/accounts/{userId}/block [patch]
func (h *AdminHandler) ToggleBlock(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Orchestrator.ToggleBlock(c.Request().Context(), c.Param("userId")); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(models.EntityAccounts, nil, 0))
}

// ApproveLoan approves a pending loan after confirmation
// @Summary Approve loan
// @Tags Admin
// @Produce json
// @Param id path string true "Loan ID"
// @Param confirm query bool false "Confirm the approval"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Failure 428 {object} errors.ErrorResponse "CONSOLE_002"
// @Router /console/loans/{id}/approve [post]
func (h *AdminHandler) ApproveLoan(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Orchestrator.ApproveLoan(c.Request().Context(), c.Param("id"), isConfirmed(c)); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(models.EntityLoans, nil, 0))
}

// LoanDetails opens the applicant of a pending loan row in the editor. The
// row's username is used as the lookup key; rows without one only raise an
// info alert.
// @Summary Open loan applicant
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoanDetailsRequest true "Loan row"
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Router /console/loans/details [post]
func (h *AdminHandler) LoanDetails(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.LoanDetailsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if req.Username == "" {
		console.Alerts.Show(models.AlertInfo, "No username available for details")
	} else if err := console.Editor.Search(c.Request().Context(), req.Username); err != nil {
		return SendConsoleError(c, console, err)
	}

	draft, state := console.Editor.Draft()
	return sendConsole(c, http.StatusOK, console, dto.EditorResponse{State: string(state), Draft: draft})
}
