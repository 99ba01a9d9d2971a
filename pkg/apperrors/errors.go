package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the services distinguish.
// Usecases wrap them with context via fmt.Errorf("...: %w", ...) and
// handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrExternal   = errors.New("external service error")
)

func Validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func Conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}

func NotFound(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrNotFound)
}

func Forbidden(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrForbidden)
}

func External(msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %v: %w", msg, cause, ErrExternal)
	}
	return fmt.Errorf("%s: %w", msg, ErrExternal)
}

// Message strips the sentinel suffix appended by the constructors above,
// leaving the human-readable part for API responses.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrForbidden, ErrExternal} {
		suffix := ": " + sentinel.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
