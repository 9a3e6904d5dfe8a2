package middleware

import (
	"strings"
	"time"

	"bank-console/internal/errors"
	"bank-console/internal/handlers"
	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionID reads the console session id from the session header, falling
// back to a "Session <id>" Authorization header.
func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(handlers.SessionHeader); id != "" {
		return strings.TrimSpace(id)
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(auth, "Session "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// RequireSession creates a middleware that resolves the console session and
// its console. Requests without a live session are answered with an auth
// error that redirects to the login route.
func RequireSession(sessionService services.SessionServiceInterface, registry services.ConsoleRegistryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionID(c)
			if raw == "" {
				return handlers.SendError(c, errors.AuthMissingToken, errors.WithRedirect(models.RouteLogin))
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithRedirect(models.RouteLogin))
			}

			session, err := sessionService.Get(c.Request().Context(), id)
			if err != nil {
				if errors.IsAuth(err) {
					registry.Discard(id)
					return handlers.SendError(c, errors.AuthSessionNotFound, errors.WithRedirect(models.RouteLogin))
				}
				return handlers.SendConsoleError(c, nil, err)
			}

			if session.IsExpired(time.Now()) {
				registry.Discard(id)
				return handlers.SendError(c, errors.AuthExpiredToken, errors.WithRedirect(models.RouteLogin))
			}

			c.Set(handlers.SessionContextKey, session)
			c.Set(handlers.ConsoleContextKey, registry.For(session))
			c.Set("session_id", session.ID.String())
			c.Set("user_role", session.Role)
			c.Set("is_admin", session.IsAdmin())

			return next(c)
		}
	}
}

// LoadSession resolves the session like RequireSession but lets anonymous
// requests through. Used by routes that answer differently when logged in.
func LoadSession(sessionService services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := uuid.Parse(sessionID(c))
			if err != nil {
				return next(c)
			}

			session, err := sessionService.Get(c.Request().Context(), id)
			if err == nil && !session.IsExpired(time.Now()) {
				c.Set(handlers.SessionContextKey, session)
				c.Set("session_id", session.ID.String())
			}
			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires a specific role. A session
// with another role is sent back to its own landing route.
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(handlers.SessionContextKey).(*models.Session)
			if !ok || session == nil {
				return handlers.SendError(c, errors.AuthSessionNotFound, errors.WithRedirect(models.RouteLogin))
			}

			for _, role := range requiredRoles {
				if session.Role == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission, errors.WithRedirect(session.LandingRoute()))
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
