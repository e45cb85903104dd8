package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterval     = errors.New("end must be after start")
	ErrInvalidStudio       = errors.New("unknown studio")
	ErrNonPositiveAmount   = errors.New("computed amount must be at least 1")
	ErrOrderIDTooLong      = errors.New("order id exceeds gateway limit")
	ErrMalformedLedgerRow  = errors.New("malformed ledger row")
	ErrInvalidPartnerCode  = errors.New("invalid partner code")
	ErrReservationNotFound = errors.New("reservation not found")
)

// ValidationError rejects a request before any side effect happens.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError reports a competing reservation or a concurrent operation.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Resource != "" && e.Msg != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// DependencyError wraps a failure of an external collaborator
// (calendar, ledger store, order store, notifier).
type DependencyError struct {
	Collaborator string
	Op           string
	Err          error
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Collaborator, e.Op, e.Err)
}

func (e DependencyError) Unwrap() error { return e.Err }

// IntegrityError marks an inbound message that failed authentication.
type IntegrityError struct {
	Msg string
}

func (e IntegrityError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "integrity check failed"
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsDependency(err error) bool {
	var target DependencyError
	return errors.As(err, &target)
}

func IsIntegrity(err error) bool {
	var target IntegrityError
	return errors.As(err, &target)
}
