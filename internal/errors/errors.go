package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes reported to the OS when the process terminates.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the session was interrupted (e.g., SIGINT).
)

// Sentinel errors for the numeric core. They are compared with errors.Is.
var (
	// ErrDegenerateInput reports two points sharing an x-value, which makes a
	// Lagrange denominator zero.
	ErrDegenerateInput = errors.New("degenerate point set: two points share an x-value")

	// ErrNonFiniteResult reports an interpolant whose coefficients overflowed
	// to an infinity or NaN.
	ErrNonFiniteResult = errors.New("interpolant has non-finite coefficients")

	// ErrNoPolynomial reports an evaluation attempted before any polynomial
	// has been computed.
	ErrNoPolynomial = errors.New("no polynomial has been computed yet")

	// ErrValueOutOfRange reports an evaluation that overflowed float64.
	ErrValueOutOfRange = errors.New("value out of float64 range")

	// ErrEmptyPointSet reports an operation that needs at least one point.
	ErrEmptyPointSet = errors.New("point set is empty")

	// ErrUnknownOverlay reports an overlay id outside the catalog.
	ErrUnknownOverlay = errors.New("unknown overlay")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot start.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MalformedInputError reports a console line that matches no command.
type MalformedInputError struct {
	// Input is the offending line, trimmed.
	Input string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("unrecognized command %q", e.Input)
}

// PreconditionError reports a recognized command that cannot run in the
// current session state, such as computing with fewer than two points.
type PreconditionError struct {
	// Command is the command letter that was rejected.
	Command string
	// Reason describes the missing precondition.
	Reason string
	// Cause is an optional underlying sentinel such as ErrNoPolynomial.
	Cause error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("command %q: %s", e.Command, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *PreconditionError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
