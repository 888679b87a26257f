// Package errors provides structured error handling for the changelogup CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// Argument errors are caused by invalid or missing command arguments.
	Argument ErrorCategory = iota
	// Configuration errors are caused by invalid or missing configuration,
	// caught before any network call is made.
	Configuration
	// Authentication errors are caused by an invalid or expired token (HTTP 401).
	Authentication
	// NotFound errors occur when the repository identifier does not resolve (HTTP 404).
	NotFound
	// RateLimit errors occur when the GitHub API signals quota exhaustion (HTTP 403/429).
	RateLimit
	// Network errors are transport-level failures reaching the API.
	Network
	// IO errors occur when the changelog file cannot be written.
	IO
	// Runtime errors cover everything else that fails during execution.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Authentication:
		return "Authentication Error"
	case NotFound:
		return "Not Found"
	case RateLimit:
		return "Rate Limit Error"
	case Network:
		return "Network Error"
	case IO:
		return "I/O Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (Configuration, Authentication, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for argument errors).
	Usage string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewArgumentError creates a new argument error with the given message and remediation steps.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Remediation: remediation,
	}
}

// NewArgumentErrorWithUsage creates a new argument error that includes correct usage syntax.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Argument,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     message,
		Remediation: remediation,
	}
}

// NewAuthenticationError creates a new authentication error.
func NewAuthenticationError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Authentication,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNotFoundError creates a new not-found error.
func NewNotFoundError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    NotFound,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRateLimitError creates a new rate-limit error.
func NewRateLimitError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    RateLimit,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNetworkError creates a new network error.
func NewNetworkError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Network,
		Message:     message,
		Remediation: remediation,
	}
}

// NewIOError creates a new I/O error.
func NewIOError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    IO,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
	}
}

// IsCLIError checks if an error is a CLIError.
func IsCLIError(err error) bool {
	_, ok := err.(*CLIError)
	return ok
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}

// CategoryOf returns the category of an error, or Runtime for plain errors.
func CategoryOf(err error) ErrorCategory {
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr.Category
	}
	return Runtime
}
