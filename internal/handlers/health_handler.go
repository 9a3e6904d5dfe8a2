package handlers

import (
	"net/http"
	"time"

	"bank-console/internal/errors"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	breaker  services.CircuitBreakerInterface
	sessions services.SessionServiceInterface
}

// NewHealthCheckHandler creates a new health check handler. db is nil when
// the audit trail is disabled; breaker and sessions are optional.
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface, sessions services.SessionServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker, sessions: sessions}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check console, audit database and backend circuit status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,backend=string,sessions=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	status := "healthy"
	backend := "unknown"
	if h.breaker != nil {
		state := h.breaker.GetState()
		backend = state.String()
		if state == services.StateOpen {
			status = "degraded"
		}
	}

	response := map[string]interface{}{
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"backend": backend,
	}

	if h.sessions != nil {
		if count, err := h.sessions.ActiveSessions(c.Request().Context()); err == nil {
			response["sessions"] = count
		}
	}

	return c.JSON(http.StatusOK, response)
}
