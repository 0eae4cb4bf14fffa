package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	seximal "github.com/shabbyrobe/go-seximal"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // Numeric failure (invalid digit, overflow, division by zero)
	ExitUsage   = 2 // Usage or configuration error
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitUsage)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// numericError wraps a library error, giving the numeric failures ExitFailure
// and everything else (unknown kinds, kind mismatches) ExitUsage.
func numericError(message string, err error) *ExitError {
	if errors.Is(err, seximal.ErrInvalidDigit) ||
		errors.Is(err, seximal.ErrOverflow) ||
		errors.Is(err, seximal.ErrDivideByZero) {
		return WrapExitError(ExitFailure, message, err)
	}
	return WrapExitError(ExitUsage, message, err)
}

// GetExitCode extracts the exit code from an error. Errors that did not come
// through ExitError are cobra's argument and flag errors, so they are usage
// errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

func exitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "ok"
	case ExitFailure:
		return "numeric"
	default:
		return "usage"
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics and text-mode errors (defaults to Writer)
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"` // "numeric" or "usage"
	Message string `json:"message"`
}

// Success outputs a successful result in the configured format. Text output
// is the result's String form.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs err in the configured format. JSON errors go to Writer so a
// caller reading stdout always gets a document.
func (f *OutputFormatter) Error(code int, err error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    exitCodeName(code),
				Message: err.Error(),
			},
		})
	}
	_, werr := fmt.Fprintf(f.errWriter(), "Error: %v\n", err)
	return werr
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
