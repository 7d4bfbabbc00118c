package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, rendering failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Unknown facet field, affordance index out of range.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Option or filter flags that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid output format, or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitCodeError pairs an error with the process exit code it should produce
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so the entry point exits with code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: code, Err: err}
}

// reportedError marks an error that was already printed to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// MarkReported records that err has been shown to the user
func MarkReported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// ExitCode returns the process exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}
