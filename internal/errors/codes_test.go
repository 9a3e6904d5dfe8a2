package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) allCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorMessages))
	for code := range errorMessages {
		codes = append(codes, code)
	}
	return codes
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Incorrect Password",
			code:     AuthIncorrectPassword,
			expected: "Incorrect password. Please try again.",
		},
		{
			name:     "User Exists",
			code:     AuthUserExists,
			expected: "User already exists",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Confirmation Required",
			code:     ConsoleConfirmationRequired,
			expected: "This action requires confirmation",
		},
		{
			name:     "Backend Circuit Open",
			code:     BackendCircuitOpen,
			expected: "Backend temporarily unavailable",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(ConsoleNothingToExport))
	s.True(IsValidErrorCode(BackendNotFound))
	s.False(IsValidErrorCode("CUSTOMER_001"))
}

func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	pattern := regexp.MustCompile(`^(AUTH|VALIDATION|CONSOLE|BACKEND|SYSTEM)_\d{3}$`)
	for _, code := range s.allCodes() {
		s.Regexp(pattern, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveStatus() {
	for _, code := range s.allCodes() {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, "code %s", code)
		s.Less(status, 600, "code %s", code)
	}
}
