// Package apperr holds the error kinds services return and their HTTP mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	TypeInvalidData  = "invalid_data"
	TypeNotFound     = "not_found"
	TypeConflict     = "conflict"
	TypeUnauthorized = "unauthorized"
	TypeForbidden    = "forbidden"
	TypeServerError  = "server_error"
)

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// RuleError reports a business-rule violation the caller can fix by changing the input.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string { return e.Message }

// ConflictError reports an operation the current stored state does not allow.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func Rule(format string, args ...any) error {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsRule(err error) bool {
	var re *RuleError
	return errors.As(err, &re)
}

// Classify returns the HTTP status, the envelope type and the client-safe
// message for err. Unknown errors become a generic 500.
func Classify(err error) (int, string, string) {
	var (
		nf *NotFoundError
		re *RuleError
		ce *ConflictError
	)
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, TypeNotFound, nf.Message
	case errors.As(err, &re):
		return http.StatusBadRequest, TypeInvalidData, re.Message
	case errors.As(err, &ce):
		return http.StatusConflict, TypeConflict, ce.Message
	default:
		return http.StatusInternalServerError, TypeServerError, "An unexpected error occurred."
	}
}
