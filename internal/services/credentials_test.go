package services

import (
	"errors"

	"bank-console/internal/dto"
	consoleErrors "bank-console/internal/errors"
	"bank-console/internal/models"

	"github.com/golang/mock/gomock"
)

func signupForm() dto.SignupRequest {
	return dto.SignupRequest{
		Username:        "carol",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Email:           "carol@example.com",
		Mobile:          "9876543210",
	}
}

func (s *SessionServiceTestSuite) TestSignup_ForwardsWithoutConfirmation() {
	s.backend.EXPECT().Signup(gomock.Any(), dto.SignupBody{
		Username: "carol",
		Password: "secret1",
		Email:    "carol@example.com",
		Mobile:   "9876543210",
	}).Return("User registered successfully", nil)
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), "carol", models.AuditActionSignup, nil).Return(nil)

	msg, err := s.service.Signup(s.ctx, signupForm())
	s.Require().NoError(err)
	s.Equal("User registered successfully", msg)
}

func (s *SessionServiceTestSuite) TestSignup_DuplicateKeepsBackendMessage() {
	exists := consoleErrors.Conflict("Username already exists").WithCode(consoleErrors.AuthUserExists)
	s.backend.EXPECT().Signup(gomock.Any(), gomock.Any()).Return("", exists)
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), "carol", models.AuditActionSignup, exists).Return(nil)

	_, err := s.service.Signup(s.ctx, signupForm())
	ce, ok := consoleErrors.AsConsoleError(err)
	s.Require().True(ok)
	s.Equal(consoleErrors.AuthUserExists, ce.Code())
	s.Equal("Username already exists", ce.Message)
}

func (s *SessionServiceTestSuite) TestSignup_BackendDown() {
	s.backend.EXPECT().Signup(gomock.Any(), gomock.Any()).Return("", consoleErrors.Transient("down", nil))
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
		Return(errors.New("audit store gone"))

	_, err := s.service.Signup(s.ctx, signupForm())
	s.Equal(consoleErrors.KindTransient, consoleErrors.KindOf(err))
	ce, _ := consoleErrors.AsConsoleError(err)
	s.Equal(SignupFailedMessage, ce.Message)
}

func (s *SessionServiceTestSuite) TestForgotPassword() {
	req := dto.ForgotPasswordRequest{Email: "carol@example.com"}
	s.backend.EXPECT().ForgotPassword(gomock.Any(), req).Return(nil)
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), "carol@example.com", models.AuditActionPasswordResetRequested, nil).Return(nil)

	s.NoError(s.service.ForgotPassword(s.ctx, req))
}

func (s *SessionServiceTestSuite) TestForgotPassword_Failure() {
	s.backend.EXPECT().ForgotPassword(gomock.Any(), gomock.Any()).Return(consoleErrors.Transient("down", nil))
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := s.service.ForgotPassword(s.ctx, dto.ForgotPasswordRequest{Email: "carol@example.com"})
	ce, ok := consoleErrors.AsConsoleError(err)
	s.Require().True(ok)
	s.Equal(ForgotPasswordFailedMessage, ce.Message)
}

func (s *SessionServiceTestSuite) TestResetPassword() {
	req := dto.ResetPasswordRequest{Email: "carol@example.com", OTP: "123456", NewPassword: "secret9", ConfirmPassword: "secret9"}
	s.backend.EXPECT().ResetPassword(gomock.Any(), dto.ResetPasswordBody{
		Email: "carol@example.com", OTP: "123456", NewPassword: "secret9",
	}).Return(nil)
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), "carol@example.com", models.AuditActionPasswordReset, nil).Return(nil)

	s.NoError(s.service.ResetPassword(s.ctx, req))
}

func (s *SessionServiceTestSuite) TestResetPassword_RejectedOTPIsValidation() {
	rejected := consoleErrors.Transient("Backend request failed", &StatusError{StatusCode: 400, Body: `{"message":"Invalid OTP"}`})
	s.backend.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).Return(rejected)
	s.audit.EXPECT().LogCredentialEvent(gomock.Any(), gomock.Any(), gomock.Any(), rejected).Return(nil)

	err := s.service.ResetPassword(s.ctx, dto.ResetPasswordRequest{Email: "carol@example.com", OTP: "1"})
	ce, ok := consoleErrors.AsConsoleError(err)
	s.Require().True(ok)
	s.Equal(consoleErrors.KindValidation, ce.Kind)
	s.Equal(ResetPasswordFailedMessage, ce.Message)
	s.Equal([]string{"Invalid OTP"}, ce.Details)
}
