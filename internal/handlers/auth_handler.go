package handlers

import (
	"net/http"

	"bank-console/internal/dto"
	"bank-console/internal/errors"
	"bank-console/internal/models"
	"bank-console/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHeader carries the console session id on every authenticated request
const SessionHeader = "X-Console-Session"

// AuthHandler handles console login, logout, landing and credential recovery
type AuthHandler struct {
	sessionService services.SessionServiceInterface
	registry       services.ConsoleRegistryInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(sessionService services.SessionServiceInterface, registry services.ConsoleRegistryInterface) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		registry:       registry,
	}
}

// Login handles console authentication
// @Summary Login
// @Description Exchange backend credentials for a console session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse{data=dto.SessionResponse} "Session created"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Login failed - BACKEND_002 or AUTH_004"
// @Failure 502 {object} errors.ErrorResponse "Backend unavailable - BACKEND_003"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.sessionService.Login(c.Request().Context(), req)
	if err != nil {
		return SendConsoleError(c, nil, err)
	}

	c.Response().Header().Set(SessionHeader, session.ID.String())
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SessionResponse{
			SessionID: session.ID.String(),
			Subject:   session.Subject,
			Role:      session.Role,
			Landing:   session.LandingRoute(),
			ExpiresAt: session.ExpiresAt,
		},
		Message: "Login successful",
	})
}

// Signup registers a new customer with the backend
// @Summary Signup
// @Description Forward a registration to the backend. confirmPassword must match password.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup form"
// @Success 201 {object} SuccessResponse{data=dto.LandingResponse} "Registered"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "AUTH_008 - username already exists"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_003"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	msg, err := h.sessionService.Signup(c.Request().Context(), req)
	if err != nil {
		return SendConsoleError(c, nil, err)
	}
	if msg == "" {
		msg = "Signup successful"
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.LandingResponse{Route: models.RouteLogin},
		Message: msg,
	})
}

// ForgotPassword requests a password reset OTP
// @Summary Forgot password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} SuccessResponse{data=dto.LandingResponse} "OTP sent"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_003"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.sessionService.ForgotPassword(c.Request().Context(), req); err != nil {
		return SendConsoleError(c, nil, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.LandingResponse{Route: models.RouteResetPassword},
		Message: "OTP sent to your email. Check your inbox.",
	})
}

// ResetPassword sets a new password using the mailed OTP
// @Summary Reset password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "OTP and new password"
// @Success 200 {object} SuccessResponse{data=dto.LandingResponse} "Password reset"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_003"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.sessionService.ResetPassword(c.Request().Context(), req); err != nil {
		return SendConsoleError(c, nil, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.LandingResponse{Route: models.RouteLogin},
		Message: "Password reset successful",
	})
}

// Logout ends the console session
// @Summary Logout
// @Tags Authentication
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.LandingResponse} "Logged out"
// @Failure 401 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.sessionService.Logout(c.Request().Context(), session.ID); err != nil {
		return SendConsoleError(c, nil, err)
	}
	h.registry.Discard(session.ID)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.LandingResponse{Route: models.RouteLogin},
		Message: "Logged out",
	})
}

// Landing returns the route the session's role lands on
// @Summary Landing route
// @Tags Authentication
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.LandingResponse}
// @Router /auth/landing [get]
func (h *AuthHandler) Landing(c echo.Context) error {
	session, err := getSessionFromContext(c)
	if err != nil {
		return c.JSON(http.StatusOK, SuccessResponse{Data: dto.LandingResponse{Route: models.RouteLogin}})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.LandingResponse{Route: session.LandingRoute()}})
}
