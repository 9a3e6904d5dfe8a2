package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies console failures. Validation failures are caught before any
// backend call; every other kind comes from the backend round trip.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindAuth         Kind = "auth"
	KindTransient    Kind = "transient"
	KindConfirmation Kind = "confirmation"
	KindConflict     Kind = "conflict"
)

// ConsoleError is a classified console failure carrying the user-facing message.
type ConsoleError struct {
	Kind    Kind
	Message string
	Details []string
	// code overrides the default code for the kind
	code ErrorCode
	Err  error
}

func (e *ConsoleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ConsoleError) Unwrap() error {
	return e.Err
}

// Code returns the API error code for the failure.
func (e *ConsoleError) Code() ErrorCode {
	if e.code != "" {
		return e.code
	}
	switch e.Kind {
	case KindValidation:
		return ValidationGeneral
	case KindNotFound:
		return BackendNotFound
	case KindAuth:
		return BackendUnauthorized
	case KindConfirmation:
		return ConsoleConfirmationRequired
	case KindConflict:
		return ConsoleFetchSuperseded
	default:
		return BackendUnavailable
	}
}

// WithCode returns a copy of the error reporting the given code.
func (e *ConsoleError) WithCode(code ErrorCode) *ConsoleError {
	cp := *e
	cp.code = code
	return &cp
}

func newConsoleError(kind Kind, message string, err error) *ConsoleError {
	return &ConsoleError{Kind: kind, Message: message, Err: err}
}

// Validation reports bad client input; no network call has been made.
func Validation(message string, details ...string) *ConsoleError {
	ce := newConsoleError(KindValidation, message, nil)
	ce.Details = details
	return ce
}

func NotFound(message string, err error) *ConsoleError {
	return newConsoleError(KindNotFound, message, err)
}

func Auth(message string, err error) *ConsoleError {
	return newConsoleError(KindAuth, message, err)
}

func Transient(message string, err error) *ConsoleError {
	return newConsoleError(KindTransient, message, err)
}

// ConfirmationRequired carries the prompt the user must accept before a
// destructive action is sent to the backend.
func ConfirmationRequired(prompt string) *ConsoleError {
	return newConsoleError(KindConfirmation, prompt, nil)
}

func Conflict(message string) *ConsoleError {
	return newConsoleError(KindConflict, message, nil)
}

// Relabel keeps the kind of a classified error but replaces its user message.
// Unclassified errors become transient.
func Relabel(err error, message string) *ConsoleError {
	if ce, ok := AsConsoleError(err); ok {
		cp := *ce
		cp.Message = message
		cp.Err = err
		return &cp
	}
	return Transient(message, err)
}

func AsConsoleError(err error) (*ConsoleError, bool) {
	var ce *ConsoleError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// KindOf classifies any error; unclassified errors are transient.
func KindOf(err error) Kind {
	if ce, ok := AsConsoleError(err); ok {
		return ce.Kind
	}
	return KindTransient
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsAuth(err error) bool {
	return err != nil && KindOf(err) == KindAuth
}

func IsConfirmationRequired(err error) bool {
	return err != nil && KindOf(err) == KindConfirmation
}
