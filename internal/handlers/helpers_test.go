package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"time"

	"bank-console/internal/models"
	"bank-console/internal/services"
	"bank-console/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// consoleFixture is a session console whose components are mocks. Alerts
// uses the real alerter so handlers can be checked for the alert they return.
type consoleFixture struct {
	orchestrator *service_mocks.MockOrchestratorInterface
	editor       *service_mocks.MockUserEditorInterface
	dashboard    *service_mocks.MockDashboardServiceInterface
	alerts       *services.Alerter
	console      *services.Console
}

func newConsoleFixture(ctrl *gomock.Controller, role string) *consoleFixture {
	f := &consoleFixture{
		orchestrator: service_mocks.NewMockOrchestratorInterface(ctrl),
		editor:       service_mocks.NewMockUserEditorInterface(ctrl),
		dashboard:    service_mocks.NewMockDashboardServiceInterface(ctrl),
		alerts:       services.NewAlerter(time.Hour),
	}
	f.console = &services.Console{
		Session: &models.Session{
			ID:        uuid.New(),
			Token:     "tok",
			Subject:   "alice",
			Role:      role,
			ExpiresAt: time.Now().Add(time.Hour),
		},
		Alerts:       f.alerts,
		Orchestrator: f.orchestrator,
		Editor:       f.editor,
		Dashboard:    f.dashboard,
	}
	return f
}

// request builds an echo context with the fixture's session and console set
func (f *consoleFixture) request(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionContextKey, f.console.Session)
	c.Set(ConsoleContextKey, f.console)
	c.Set(TraceIDContextKey, "trace-1")
	return c, rec
}

type consoleEnvelope struct {
	View  string          `json:"view"`
	Alert *models.Alert   `json:"alert"`
	Data  json.RawMessage `json:"data"`
}

type consoleErrorEnvelope struct {
	Error struct {
		Code     string `json:"code"`
		Message  string `json:"message"`
		TraceID  string `json:"trace_id"`
		Redirect string `json:"redirect"`
	} `json:"error"`
	Alert *models.Alert `json:"alert"`
}

func decodeConsole(rec *httptest.ResponseRecorder) consoleEnvelope {
	var env consoleEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}

func decodeConsoleError(rec *httptest.ResponseRecorder) consoleErrorEnvelope {
	var env consoleErrorEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}
