package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrFileNotFound      = errors.New("file not found")
	ErrMissingLanguage   = errors.New("language is not specified for stdin")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrIndentOutOfRange  = errors.New("indentation level must be less than or equal to 10")
	ErrNonObjectRoot     = errors.New("parsed data is not a valid object")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeParse    ErrorType = "parse"
	ErrorTypeInternal ErrorType = "internal"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new error related to parsing input documents
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new error for broken invariants. These indicate
// a bug in an adapter, not bad user input.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeParse:
			if appErr.Err != nil {
				return fmt.Sprintf("Parse error: %s: %v", appErr.Message, appErr.Err)
			}
			return fmt.Sprintf("Parse error: %s", appErr.Message)
		case ErrorTypeInternal:
			return fmt.Sprintf("Internal error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrMissingLanguage) {
		return "Error: No language specified for stdin input. Pass one with --language (json, toml, yaml)."
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		return "Error: Unsupported file format. Supported formats are json, toml, yaml and yml."
	}
	if errors.Is(err, ErrIndentOutOfRange) {
		return "Error: Indentation level must be between 0 and 10."
	}
	if errors.Is(err, ErrNonObjectRoot) {
		return "Error: Internal error: parsed data is not a valid object."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
