package core

import (
	"errors"
	"fmt"

	"loopdrop/internal/validator"
)

var (
	ErrNotFound      error = errors.New("distribution not found")
	ErrTotalMismatch error = errors.New("entry amounts do not add up to the distribution total")
)

// ValidationError carries every field error found in a request.
type ValidationError struct {
	Errors []validator.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d error(s)", len(e.Errors))
}

// InvalidStateError is returned when an operation is not allowed in the
// current status of a distribution.
type InvalidStateError struct {
	Operation string
	Status    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s distribution with status: %s", e.Operation, e.Status)
}

// GatewayError wraps a failure of the multisig gateway.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
