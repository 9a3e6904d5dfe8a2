package handlers

import (
	"fmt"
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
)

// ConsoleHandler serves the list screens: fetch, table view, paging and export
type ConsoleHandler struct {
	allowed map[models.EntityType]bool
}

// NewConsoleHandler creates a handler serving only the given entities
func NewConsoleHandler(entities ...models.EntityType) *ConsoleHandler {
	allowed := make(map[models.EntityType]bool, len(entities))
	for _, e := range entities {
		allowed[e] = true
	}
	return &ConsoleHandler{allowed: allowed}
}

// resolve returns the session console and the :entity parameter this handler serves
func (h *ConsoleHandler) resolve(c echo.Context) (*services.Console, models.EntityType, error) {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return nil, "", errors.Auth(errors.GetErrorMessage(errors.AuthSessionNotFound), err).
			WithCode(errors.AuthSessionNotFound)
	}

	entity, err := getEntityParam(c)
	if err != nil || !h.allowed[entity] {
		return console, "", errors.Validation(errors.GetErrorMessage(errors.ConsoleUnknownEntity),
			fmt.Sprintf("unknown view %q", c.Param("entity"))).WithCode(errors.ConsoleUnknownEntity)
	}
	return console, entity, nil
}

// Fetch loads an entity collection from the backend
// @Summary Fetch an entity collection
// @Tags Console
// @Accept json
// @Produce json
// @Param entity path string true "Entity type"
// @Param request body dto.FetchRequest false "Fetch options"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Failure 400 {object} errors.ErrorResponse "CONSOLE_001"
// @Failure 409 {object} errors.ErrorResponse "CONSOLE_005 - superseded by a newer fetch"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_003"
// @Router /console/{entity}/fetch [post]
func (h *ConsoleHandler) Fetch(c echo.Context) error {
	console, entity, err := h.resolve(c)
	if err != nil {
		return SendConsoleError(c, console, err)
	}

	var req dto.FetchRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
		if err := c.Validate(req); err != nil {
			return err
		}
	}
	if req.Username == "" {
		req.Username = c.QueryParam("username")
	}

	if err := console.Orchestrator.Fetch(c.Request().Context(), entity, req); err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(entity, nil, 0))
}

// View renders the current page of an entity table. q and page update the
// table state before rendering; a new q resets the page to 1.
// @Summary View an entity table
// @Tags Console
// @Produce json
// @Param entity path string true "Entity type"
// @Param q query string false "Case-insensitive filter"
// @Param page query int false "Page number"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Router /console/{entity} [get]
func (h *ConsoleHandler) View(c echo.Context) error {
	console, entity, err := h.resolve(c)
	if err != nil {
		return SendConsoleError(c, console, err)
	}

	var query *string
	if q, ok := c.QueryParams()["q"]; ok && len(q) > 0 {
		query = &q[0]
	}
	page := getIntParam(c, "page", 0)

	return sendConsole(c, http.StatusOK, console, console.Orchestrator.Table(entity, query, page))
}

// Next advances the table one page
// @Summary Next page
// @Tags Console
// @Produce json
// @Param entity path string true "Entity type"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Router /console/{entity}/next [post]
func (h *ConsoleHandler) Next(c echo.Context) error {
	console, entity, err := h.resolve(c)
	if err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.NextPage(entity))
}

// Prev moves the table back one page
// @Summary Previous page
// @Tags Console
// @Produce json
// @Param entity path string true "Entity type"
// @Success 200 {object} dto.ConsoleResponse{data=dto.TablePage}
// @Router /console/{entity}/prev [post]
func (h *ConsoleHandler) Prev(c echo.Context) error {
	console, entity, err := h.resolve(c)
	if err != nil {
		return SendConsoleError(c, console, err)
	}
	return sendConsole(c, http.StatusOK, console, console.Orchestrator.PrevPage(entity))
}

// Export downloads the whole loaded collection as CSV
// @Summary Export CSV
// @Tags Console
// @Produce text/csv
// @Param entity path string true "Entity type"
// @Success 200 {file} file
// @Failure 422 {object} errors.ErrorResponse "CONSOLE_003 - nothing to export"
// @Router /console/{entity}/export [get]
func (h *ConsoleHandler) Export(c echo.Context) error {
	console, entity, err := h.resolve(c)
	if err != nil {
		return SendConsoleError(c, console, err)
	}

	export, err := console.Orchestrator.Export(c.Request().Context(), entity)
	if err != nil {
		return SendConsoleError(c, console, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}

// Alert returns the pending alert of the session
// @Summary Current alert
// @Tags Console
// @Produce json
// @Success 200 {object} dto.ConsoleResponse
// @Router /console/alert [get]
func (h *ConsoleHandler) Alert(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}
	return sendConsole(c, http.StatusOK, console, nil)
}

// DismissAlert clears the pending alert
// @Summary Dismiss alert
// @Tags Console
// @Success 204
// @Router /console/alert [delete]
func (h *ConsoleHandler) DismissAlert(c echo.Context) error {
	console, err := getConsoleFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthSessionNotFound)
	}
	console.Alerts.Clear()
	return c.NoContent(http.StatusNoContent)
}
