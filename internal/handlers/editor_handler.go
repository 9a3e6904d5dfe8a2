package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
)

// EditorHandler serves the single-user edit workflow
type EditorHandler struct{}

func NewEditorHandler() *EditorHandler {
	return &EditorHandler{}
}

func (h *EditorHandler) respond(c echo.Context, console *services.Console) error {
	draft, state := console.Editor.Draft()
	return sendConsole(c, http.StatusOK, console, dto.EditorResponse{State: string(state), Draft: draft})
}

// Search loads a user and balance into the editor draft
// @Summary Search user
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body dto.EditorSearchRequest true "User identity"
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Failure 404 {object} errors.ErrorResponse "BACKEND_001"
// @Router /console/editor/search [post]
func (h *EditorHandler) Search(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.EditorSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := console.Editor.Search(c.Request().Context(), req.ID); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// Get returns the editor state and draft
// @Summary Current draft
// @Tags Editor
// @Produce json
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Router /console/editor [get]
func (h *EditorHandler) Get(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}
	return h.respond(c, console)
}

// Patch applies local edits to the draft
// @Summary Edit draft
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body dto.EditorPatchRequest true "Fields"
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Failure 404 {object} errors.ErrorResponse "CONSOLE_004 - no draft"
// @Router /console/editor [patch]
func (h *EditorHandler) Patch(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	var req dto.EditorPatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := console.Editor.SetFields(req.Fields); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// SaveProfile sends the edited profile fields
// @Summary Save profile
// @Tags Editor
// @Produce json
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Router /console/editor/profile [put]
func (h *EditorHandler) SaveProfile(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Editor.SaveProfile(c.Request().Context()); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// SaveBalance sends the edited balance
// @Summary Save balance
// @Tags Editor
// @Produce json
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005"
// @Router /console/editor/balance [put]
func (h *EditorHandler) SaveBalance(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Editor.SaveBalance(c.Request().Context()); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// RefreshBalance re-reads the balance of the loaded user
// @Summary Refresh balance
// @Tags Editor
// @Produce json
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Router /console/editor/balance/refresh [post]
func (h *EditorHandler) RefreshBalance(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Editor.RefreshBalance(c.Request().Context()); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// Delete removes a user after confirmation
// @Summary Delete user
// @Tags Editor
// @Produce json
// @Param id path string true "User ID"
// @Param confirm query bool false "Confirm the deletion"
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Failure 428 {object} errors.ErrorResponse "CONSOLE_002"
// @Router /console/editor/{id} [delete]
func (h *EditorHandler) Delete(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	if err := console.Editor.Delete(c.Request().Context(), c.Param("id"), isConfirmed(c)); err != nil {
		return SendConsoleError(c, console, err)
	}
	return h.respond(c, console)
}

// Cancel drops the draft
// @Summary Cancel edit
// @Tags Editor
// @Produce json
// @Success 200 {object} dto.ConsoleResponse{data=dto.EditorResponse}
// @Router /console/editor [delete]
func (h *EditorHandler) Cancel(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}

	console.Editor.Cancel()
	return h.respond(c, console)
}
