package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"bank-console/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecovered = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "console_panics_recovered_total",
		Help: "Total number of recovered handler panics by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery is a middleware that recovers from panics and returns a standardized error response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}
					sessionID, _ := c.Get("session_id").(string)

					slog.ErrorContext(c.Request().Context(), "Panic recovered",
						"trace_id", traceID,
						"session_id", sessionID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)
					panicsRecovered.WithLabelValues(c.Path()).Inc()

					if c.Response().Committed {
						return
					}

					errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
					if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
						slog.Error("Failed to send panic recovery response",
							"trace_id", traceID,
							"error", err.Error(),
						)
					}
				}
			}()

			return next(c)
		}
	}
}
