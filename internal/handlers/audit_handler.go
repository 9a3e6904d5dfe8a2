package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/repositories"
	"bank-console/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditHandler exposes the console audit trail to admins
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List searches the audit trail
// @Summary List audit entries
// @Tags Audit
// @Produce json
// @Param actor query string false "Actor username"
// @Param action query string false "Action"
// @Param entity query string false "Entity"
// @Param outcome query string false "success or failure"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.AuditListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - audit trail disabled"
// @Router /audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	if h.auditService == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit trail is disabled"))
	}

	var query dto.AuditQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return err
	}

	filter := repositories.AuditLogFilter{
		Actor:   query.Actor,
		Action:  query.Action,
		Entity:  query.Entity,
		Outcome: query.Outcome,
		Since:   query.Since,
		Until:   query.Until,
	}

	page, limit := pageBounds(query.Page, query.Limit)
	entries, total, err := h.auditService.Search(c.Request().Context(), filter, (page-1)*limit, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, auditPage(entries, total, page, limit))
}

// ResourceHistory lists the audit entries of one backend resource
// @Summary Audit history of a resource
// @Tags Audit
// @Produce json
// @Param entity path string true "Entity"
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.AuditListResponse
// @Router /audit/{entity}/{id} [get]
func (h *AuditHandler) ResourceHistory(c echo.Context) error {
	if h.auditService == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit trail is disabled"))
	}

	page, limit := pageBounds(getIntParam(c, "page", 1), getIntParam(c, "limit", defaultAuditLimit))
	entries, total, err := h.auditService.ResourceHistory(c.Request().Context(), c.Param("entity"), c.Param("id"), (page-1)*limit, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, auditPage(entries, total, page, limit))
}

// SessionHistory lists the audit entries recorded under one console session
// @Summary Audit history of a session
// @Tags Audit
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} dto.AuditListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003"
// @Router /audit/sessions/{sessionId} [get]
func (h *AuditHandler) SessionHistory(c echo.Context) error {
	if h.auditService == nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Audit trail is disabled"))
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	page, limit := pageBounds(getIntParam(c, "page", 1), getIntParam(c, "limit", defaultAuditLimit))
	entries, total, err := h.auditService.SessionHistory(c.Request().Context(), sessionID, (page-1)*limit, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, auditPage(entries, total, page, limit))
}

func pageBounds(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return page, limit
}

func auditPage(entries []*models.AuditLog, total int64, page, limit int) dto.AuditListResponse {
	return dto.AuditListResponse{
		Entries:    entries,
		Pagination: dto.PaginationMeta{Page: page, Limit: limit, Total: total},
	}
}
