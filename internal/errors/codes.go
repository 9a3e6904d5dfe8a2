package errors

// ErrorCode represents a standardized error code used throughout the console API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthSessionNotFound        ErrorCode = "AUTH_006"
	AuthIncorrectPassword      ErrorCode = "AUTH_007"
	AuthUserExists             ErrorCode = "AUTH_008"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidAmount ErrorCode = "VALIDATION_005"
)

// Console error codes (CONSOLE_*)
const (
	ConsoleUnknownEntity        ErrorCode = "CONSOLE_001"
	ConsoleConfirmationRequired ErrorCode = "CONSOLE_002"
	ConsoleNothingToExport      ErrorCode = "CONSOLE_003"
	ConsoleNoDraft              ErrorCode = "CONSOLE_004"
	ConsoleFetchSuperseded      ErrorCode = "CONSOLE_005"
)

// Backend error codes (BACKEND_*)
const (
	BackendNotFound     ErrorCode = "BACKEND_001"
	BackendUnauthorized ErrorCode = "BACKEND_002"
	BackendUnavailable  ErrorCode = "BACKEND_003"
	BackendCircuitOpen  ErrorCode = "BACKEND_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Login failed. Check username/password or server.",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Session has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthSessionNotFound:        "Session not found, please log in again",
	AuthIncorrectPassword:      "Incorrect password. Please try again.",
	AuthUserExists:             "User already exists",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidAmount: "Enter a valid amount",

	// Console errors
	ConsoleUnknownEntity:        "Unknown console view",
	ConsoleConfirmationRequired: "This action requires confirmation",
	ConsoleNothingToExport:      "Nothing to export",
	ConsoleNoDraft:              "No user is loaded in the editor",
	ConsoleFetchSuperseded:      "Fetch was superseded by a newer request",

	// Backend errors
	BackendNotFound:     "Requested record was not found",
	BackendUnauthorized: "Backend rejected the session token",
	BackendUnavailable:  "Backend request failed",
	BackendCircuitOpen:  "Backend temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
