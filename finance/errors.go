/*
errors.go - Centralized error types for the calculator engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The API layer maps these onto HTTP status codes and error codes.

ERROR CATEGORIES:
  1. Schema errors - a request field violates its declared bound;
     produced by the validation layer before any formula runs
  2. Argument errors - a value passed schema validation but violates
     a computation precondition (zero compounding frequency, zero
     payment count, zero total weight)

USAGE:
  if errors.Is(err, finance.ErrInvalidArgument) {
      // reject with 400
  }

SEE ALSO:
  - interest.go, loan.go, savings.go, rentsplit.go: return these errors
  - api/dto.go: produces FieldError during request validation
*/
package finance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrSchemaValidation is the category for request fields that
	// violate their declared type or bound. Detected before any
	// computation executes.
	ErrSchemaValidation = errors.New("schema validation failed")

	// ErrInvalidArgument is the category for values that pass schema
	// validation but violate a computation precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// FieldError reports a single request field that violates its bound.
type FieldError struct {
	Field   string // JSON field name, e.g. "principal"
	Message string // human-readable constraint, e.g. "must be > 0"
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrSchemaValidation
}

// InvalidArgumentError reports a computation precondition violation.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
// Every error this package produces is a client error; the helper exists
// so the API layer never guesses at status codes.
func IsClientError(err error) bool {
	return errors.Is(err, ErrSchemaValidation) ||
		errors.Is(err, ErrInvalidArgument)
}
