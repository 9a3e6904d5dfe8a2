package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestConsoleHandler(t *testing.T) {
	suite.Run(t, new(ConsoleHandlerSuite))
}

type ConsoleHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	f       *consoleFixture
	handler *ConsoleHandler
	e       *echo.Echo
}

func (s *ConsoleHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newConsoleFixture(s.ctrl, models.RoleAdmin)
	s.handler = NewConsoleHandler(models.AdminEntities...)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *ConsoleHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ConsoleHandlerSuite) withEntity(c echo.Context, entity string) {
	c.SetParamNames("entity")
	c.SetParamValues(entity)
}

func (s *ConsoleHandlerSuite) TestFetch_Success() {
	page := dto.TablePage{Entity: "users", State: "loaded", Page: 1, PageCount: 1, Total: 1}
	s.f.orchestrator.EXPECT().Fetch(gomock.Any(), models.EntityUsers, dto.FetchRequest{}).
		DoAndReturn(func(_ interface{}, _ models.EntityType, _ dto.FetchRequest) error {
			s.f.alerts.Show(models.AlertSuccess, "Users loaded")
			return nil
		})
	s.f.orchestrator.EXPECT().Table(models.EntityUsers, nil, 0).Return(page)
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityUsers)

	c, rec := s.f.request(s.e, http.MethodPost, "/console/users/fetch", "")
	s.withEntity(c, "users")

	s.NoError(s.handler.Fetch(c))
	s.Equal(http.StatusOK, rec.Code)

	env := decodeConsole(rec)
	s.Equal("users", env.View)
	s.Require().NotNil(env.Alert)
	s.Equal("Users loaded", env.Alert.Message)

	var got dto.TablePage
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(1, got.Total)
}

func (s *ConsoleHandlerSuite) TestFetch_UsernameFromQuery() {
	s.f.orchestrator.EXPECT().Fetch(gomock.Any(), models.EntityRepayments, dto.FetchRequest{Username: "bob"}).Return(nil)
	s.f.orchestrator.EXPECT().Table(models.EntityRepayments, nil, 0).Return(dto.TablePage{})
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityRepayments)

	c, rec := s.f.request(s.e, http.MethodPost, "/console/repayments/fetch?username=bob", "")
	s.withEntity(c, "repayments")

	s.NoError(s.handler.Fetch(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ConsoleHandlerSuite) TestFetch_BackendFailureCarriesAlert() {
	s.f.orchestrator.EXPECT().Fetch(gomock.Any(), models.EntityLoans, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ models.EntityType, _ dto.FetchRequest) error {
			s.f.alerts.Show(models.AlertDanger, "Failed to load pending loans")
			return consoleErrors.Transient("Failed to load pending loans", nil)
		})

	c, rec := s.f.request(s.e, http.MethodPost, "/console/loans/fetch", "")
	s.withEntity(c, "loans")

	s.NoError(s.handler.Fetch(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	env := decodeConsoleError(rec)
	s.Equal(string(consoleErrors.BackendUnavailable), env.Error.Code)
	s.Equal("trace-1", env.Error.TraceID)
	s.Require().NotNil(env.Alert)
	s.Equal(models.AlertDanger, env.Alert.Kind)
}

func (s *ConsoleHandlerSuite) TestFetch_EntityOutsideHandler() {
	c, rec := s.f.request(s.e, http.MethodPost, "/console/my-repayments/fetch", "")
	s.withEntity(c, "my-repayments")

	s.NoError(s.handler.Fetch(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(consoleErrors.ConsoleUnknownEntity), decodeConsoleError(rec).Error.Code)
}

func (s *ConsoleHandlerSuite) TestFetch_NoConsole() {
	req, rec := s.f.request(s.e, http.MethodPost, "/console/users/fetch", "")
	req.Set(ConsoleContextKey, nil)
	s.withEntity(req, "users")

	s.NoError(s.handler.Fetch(req))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ConsoleHandlerSuite) TestListRoutes_RejectUnknownEntity() {
	routes := map[string]echo.HandlerFunc{
		"view":   s.handler.View,
		"next":   s.handler.Next,
		"prev":   s.handler.Prev,
		"export": s.handler.Export,
	}
	for name, route := range routes {
		s.Run(name, func() {
			c, rec := s.f.request(s.e, http.MethodGet, "/console/payments", "")
			s.withEntity(c, "payments")

			s.NoError(route(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			env := decodeConsoleError(rec)
			s.Equal(string(consoleErrors.ConsoleUnknownEntity), env.Error.Code)
			s.Empty(env.Error.Redirect)
		})
	}
}

func (s *ConsoleHandlerSuite) TestView_QueryAndPage() {
	query := "ann"
	s.f.orchestrator.EXPECT().Table(models.EntityUsers, &query, 2).Return(dto.TablePage{Query: "ann", Page: 2})
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityUsers)

	c, rec := s.f.request(s.e, http.MethodGet, "/console/users?q=ann&page=2", "")
	s.withEntity(c, "users")

	s.NoError(s.handler.View(c))
	s.Equal(http.StatusOK, rec.Code)

	var got dto.TablePage
	s.Require().NoError(json.Unmarshal(decodeConsole(rec).Data, &got))
	s.Equal(2, got.Page)
	s.Equal("ann", got.Query)
}

func (s *ConsoleHandlerSuite) TestView_EmptyQueryIsStillAQuery() {
	empty := ""
	s.f.orchestrator.EXPECT().Table(models.EntityUsers, &empty, 0).Return(dto.TablePage{})
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityUsers)

	c, _ := s.f.request(s.e, http.MethodGet, "/console/users?q=", "")
	s.withEntity(c, "users")

	s.NoError(s.handler.View(c))
}

func (s *ConsoleHandlerSuite) TestView_NoQueryKeepsFilter() {
	s.f.orchestrator.EXPECT().Table(models.EntityUsers, nil, 0).Return(dto.TablePage{})
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityUsers)

	c, _ := s.f.request(s.e, http.MethodGet, "/console/users", "")
	s.withEntity(c, "users")

	s.NoError(s.handler.View(c))
}

func (s *ConsoleHandlerSuite) TestNextAndPrev() {
	s.f.orchestrator.EXPECT().NextPage(models.EntityAccounts).Return(dto.TablePage{Page: 2})
	s.f.orchestrator.EXPECT().PrevPage(models.EntityAccounts).Return(dto.TablePage{Page: 1})
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityAccounts).Times(2)

	c, rec := s.f.request(s.e, http.MethodPost, "/console/accounts/next", "")
	s.withEntity(c, "accounts")
	s.NoError(s.handler.Next(c))
	s.Equal(http.StatusOK, rec.Code)

	c, rec = s.f.request(s.e, http.MethodPost, "/console/accounts/prev", "")
	s.withEntity(c, "accounts")
	s.NoError(s.handler.Prev(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ConsoleHandlerSuite) TestExport_Download() {
	s.f.orchestrator.EXPECT().Export(gomock.Any(), models.EntityTransactions).Return(&models.CSVExport{
		Filename:    "transactions.csv",
		ContentType: "text/csv",
		Data:        []byte("id,amount\n1,10\n"),
	}, nil)

	c, rec := s.f.request(s.e, http.MethodGet, "/console/transactions/export", "")
	s.withEntity(c, "transactions")

	s.NoError(s.handler.Export(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="transactions.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal("id,amount\n1,10\n", rec.Body.String())
}

func (s *ConsoleHandlerSuite) TestExport_NothingToExport() {
	s.f.orchestrator.EXPECT().Export(gomock.Any(), models.EntityUsers).
		DoAndReturn(func(_ interface{}, _ models.EntityType) (*models.CSVExport, error) {
			s.f.alerts.Show(models.AlertInfo, "Nothing to export")
			return nil, consoleErrors.Validation("Nothing to export").WithCode(consoleErrors.ConsoleNothingToExport)
		})

	c, rec := s.f.request(s.e, http.MethodGet, "/console/users/export", "")
	s.withEntity(c, "users")

	s.NoError(s.handler.Export(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	env := decodeConsoleError(rec)
	s.Require().NotNil(env.Alert)
	s.Equal(models.AlertInfo, env.Alert.Kind)
}

func (s *ConsoleHandlerSuite) TestAlert_GetAndDismiss() {
	s.f.alerts.Show(models.AlertSuccess, "Approved loan #4")
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityLoans)

	c, rec := s.f.request(s.e, http.MethodGet, "/console/alert", "")
	s.NoError(s.handler.Alert(c))
	s.Equal("Approved loan #4", decodeConsole(rec).Alert.Message)

	c, rec = s.f.request(s.e, http.MethodDelete, "/console/alert", "")
	s.NoError(s.handler.DismissAlert(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Nil(s.f.alerts.Current())
}
