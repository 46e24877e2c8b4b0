package apperrors

import (
	"github.com/pkg/errors"
)

// Kind sentinels. Every error leaving a service is wrapped around one of these
// so controllers and CLI commands can map it to an exit path without string
// matching.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
)

// Validation creates a validation error with the given message.
func Validation(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

// Validationf creates a formatted validation error.
func Validationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

// Authorization creates an authorization error with the given message.
func Authorization(msg string) error {
	return errors.Wrap(ErrAuthorization, msg)
}

// NotFound creates a not-found error with the given message.
func NotFound(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}

// NotFoundf creates a formatted not-found error.
func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

// Conflict creates a conflict error with the given message.
func Conflict(msg string) error {
	return errors.Wrap(ErrConflict, msg)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsAuthorization reports whether err is an authorization error.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrAuthorization)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
