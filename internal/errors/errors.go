package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the program.
// These codes signal the outcome of the run to the OS. Under normal
// operation the emitter never terminates on its own, so a zero exit is only
// reachable through the explicit cycle limit.
const (
	ExitSuccess       = 0   // Indicates successful completion (cycle limit reached).
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorEmit     = 2   // Indicates the output sink failed (e.g., closed pipe).
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the program cannot start with the given
// input.
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

// EmitError encapsulates a failure to write to the output sink while
// preserving the original cause. Sink failures are fatal: output order must
// be preserved, so a term that could not be written is never retried or
// skipped.
type EmitError struct {
	// Cause is the underlying write error.
	Cause error
}

// Error returns a message describing the sink failure.
func (e EmitError) Error() string {
	return fmt.Sprintf("emit failed: %v", e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection with errors.Is and errors.As.
func (e EmitError) Unwrap() error { return e.Cause }

// NewEmitError wraps a sink write failure. Returns nil if err is nil.
func NewEmitError(err error) error {
	if err == nil {
		return nil
	}
	return EmitError{Cause: err}
}

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable explanation.
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

// WrapError wraps an error with additional context using fmt.Errorf and %w.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForError maps a run error to the process exit code.
func ExitCodeForError(err error) int {
	var emitErr EmitError
	var configErr ConfigError
	var validationErr ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &emitErr):
		return ExitErrorEmit
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
