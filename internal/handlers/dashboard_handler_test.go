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

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerSuite))
}

type DashboardHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	f       *consoleFixture
	handler *DashboardHandler
	e       *echo.Echo
}

func (s *DashboardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newConsoleFixture(s.ctrl, models.RoleUser)
	s.handler = NewDashboardHandler()
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.f.orchestrator.EXPECT().ActiveView().Return(models.EntityApprovedLoans).AnyTimes()
}

func (s *DashboardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerSuite) TestCreateRepayment() {
	s.f.orchestrator.EXPECT().CreateRepayment(gomock.Any(), dto.RepaymentRequest{LoanID: "9", Amount: "250"}).
		Return(models.RecordOf("remainingBalance", 750.0), nil)

	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/repayments", `{"loanId":"9","amount":"250"}`)

	s.NoError(s.handler.CreateRepayment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var got map[string]interface{}
	s.Require().NoError(json.Unmarshal(decodeConsole(rec).Data, &got))
	s.Equal(750.0, got["remainingBalance"])
}

func (s *DashboardHandlerSuite) TestCreateRepayment_FormMessageReachesClient() {
	s.f.orchestrator.EXPECT().CreateRepayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, _ dto.RepaymentRequest) (*models.Record, error) {
			s.f.alerts.Show(models.AlertDanger, "Please select a loan and enter an amount.")
			return nil, consoleErrors.Validation("Please select a loan and enter an amount.").WithCode(consoleErrors.ValidationRequiredField)
		})

	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/repayments", `{"amount":"10"}`)

	s.NoError(s.handler.CreateRepayment(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	env := decodeConsoleError(rec)
	s.Equal(string(consoleErrors.ValidationRequiredField), env.Error.Code)
	s.Equal("Please select a loan and enter an amount.", env.Alert.Message)
}

func (s *DashboardHandlerSuite) TestCreateRepayment_BadJSON() {
	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/repayments", `{"loanId":`)

	s.NoError(s.handler.CreateRepayment(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(consoleErrors.ValidationGeneral), decodeConsoleError(rec).Error.Code)
}

func (s *DashboardHandlerSuite) TestTransfer_IncorrectPasswordStaysOnPage() {
	s.f.dashboard.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(consoleErrors.Relabel(consoleErrors.Auth("bad", nil), "Incorrect password. Please try again.").WithCode(consoleErrors.AuthIncorrectPassword))

	body := `{"senderAccount":"A1","receiverAccount":"B2","amount":10,"password":"x"}`
	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/transfer", body)

	s.NoError(s.handler.Transfer(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	env := decodeConsoleError(rec)
	s.Equal(string(consoleErrors.AuthIncorrectPassword), env.Error.Code)
	s.Empty(env.Error.Redirect)
}

func (s *DashboardHandlerSuite) TestTransfer_ExpiredBackendTokenRedirects() {
	s.f.dashboard.EXPECT().Transfer(gomock.Any(), gomock.Any()).
		Return(consoleErrors.Auth("Session expired", nil).WithCode(consoleErrors.BackendUnauthorized))

	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/transfer", `{}`)

	s.NoError(s.handler.Transfer(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(models.RouteUser, decodeConsoleError(rec).Error.Redirect)
}

func (s *DashboardHandlerSuite) TestTransfer_Success() {
	s.f.dashboard.EXPECT().Transfer(gomock.Any(), dto.TransferRequest{
		SenderAccount: "A1", ReceiverAccount: "B2", Amount: 10, Password: "pw",
	}).DoAndReturn(func(_ interface{}, _ dto.TransferRequest) error {
		s.f.alerts.Show(models.AlertSuccess, "Transfer completed successfully!")
		return nil
	})

	body := `{"senderAccount":"A1","receiverAccount":"B2","amount":10,"password":"pw"}`
	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/transfer", body)

	s.NoError(s.handler.Transfer(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Transfer completed successfully!", decodeConsole(rec).Alert.Message)
}

func (s *DashboardHandlerSuite) TestCheckThenApplyLatest() {
	eligibility := models.RecordOf("id", "E1", "eligible", true)
	s.f.dashboard.EXPECT().CheckLoanEligibility(gomock.Any(), gomock.Any()).Return(eligibility, nil)
	s.f.dashboard.EXPECT().ApplyLoan(gomock.Any(), "").Return(models.RecordOf("status", "PENDING"), nil)

	c, rec := s.f.request(s.e, http.MethodPost, "/dashboard/loans/check",
		`{"income":50000,"creditScore":700,"requestedAmount":10000,"adhar":"123412341234","pan":"ABCDE1234F"}`)
	s.NoError(s.handler.CheckLoan(c))
	s.Equal(http.StatusOK, rec.Code)

	c, rec = s.f.request(s.e, http.MethodPost, "/dashboard/loans/latest/apply", "")
	c.SetParamNames("id")
	c.SetParamValues("latest")
	s.NoError(s.handler.ApplyLoan(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DashboardHandlerSuite) TestLoanAndReset() {
	s.f.dashboard.EXPECT().Eligibility().Return(nil)
	c, rec := s.f.request(s.e, http.MethodGet, "/dashboard/loans", "")
	s.NoError(s.handler.Loan(c))
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), `"data"`)

	s.f.dashboard.EXPECT().ResetLoan()
	c, rec = s.f.request(s.e, http.MethodDelete, "/dashboard/loans", "")
	s.NoError(s.handler.ResetLoan(c))
	s.Equal(http.StatusOK, rec.Code)
}
