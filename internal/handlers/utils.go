package handlers

import (
	"fmt"
	"strconv"

	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionContextKey holds the *models.Session set by the session middleware
	SessionContextKey = "console_session"
	// ConsoleContextKey holds the *services.Console of that session
	ConsoleContextKey = "console"
)

// ErrUnauthorized is returned when the request carries no console session
var ErrUnauthorized = fmt.Errorf("unauthorized")

func getSessionFromContext(c echo.Context) (*models.Session, error) {
	session, ok := c.Get(SessionContextKey).(*models.Session)
	if !ok || session == nil {
		return nil, ErrUnauthorized
	}
	return session, nil
}

func getConsoleFromContext(c echo.Context) (*services.Console, error) {
	console, ok := c.Get(ConsoleContextKey).(*services.Console)
	if !ok || console == nil {
		return nil, ErrUnauthorized
	}
	return console, nil
}

// getEntityParam parses the :entity path parameter
func getEntityParam(c echo.Context) (models.EntityType, error) {
	return models.ParseEntityType(c.Param("entity"))
}

// isConfirmed reads the confirm query flag of destructive actions
func isConfirmed(c echo.Context) bool {
	confirmed, err := strconv.ParseBool(c.QueryParam("confirm"))
	return err == nil && confirmed
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
