package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// 1. SendError - request problems detected in the handler itself
//    (bad body, bad path parameter, missing session)
//
// 2. SendConsoleError - any error returned by a console service. The error's
//    kind picks the code and status; the pending alert travels with it.
//
// 3. SendSystemError - unexpected failures. Internal details are not exposed.
//
// Handlers never call echo.NewHTTPError or write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// ConsoleErrorResponse is an error response carrying the console alert
type ConsoleErrorResponse struct {
	errors.ErrorResponse
	Alert *models.Alert `json:"alert,omitempty"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendConsoleError maps a console service error to its response. A console
// auth failure also tells the client where to go next.
func SendConsoleError(c echo.Context, console *services.Console, err error) error {
	if _, ok := errors.AsConsoleError(err); !ok {
		return SendSystemError(c, err)
	}

	response := ConsoleErrorResponse{ErrorResponse: *errors.FromConsoleError(err, getTraceID(c))}
	if console != nil {
		response.Alert = console.Alerts.Current()
		if errors.IsAuth(err) && response.Error.Code != string(errors.AuthIncorrectPassword) {
			response.Error.Redirect = console.Session.LandingRoute()
		}
	}
	return c.JSON(response.GetHTTPStatus(), response)
}

// sendConsole writes a console payload together with the active view and alert
func sendConsole(c echo.Context, status int, console *services.Console, data interface{}) error {
	return c.JSON(status, dto.ConsoleResponse{
		View:  string(console.Orchestrator.ActiveView()),
		Alert: console.Alerts.Current(),
		Data:  data,
	})
}
