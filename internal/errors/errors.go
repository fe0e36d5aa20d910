package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports a match when target is an AppError carrying the same code,
// so errors.Is(err, errors.New(CodeOutputIO, "")) works across wrapping.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the code of the outermost AppError in the chain, or "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeWorkbookOpen    = "WORKBOOK_OPEN"
	CodeSheetNotFound   = "SHEET_NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
	CodeRenderError     = "RENDER_ERROR"
	CodeOutputIO        = "OUTPUT_IO"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ConfigInvalidf(cause error, format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeConfigInvalid, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func WorkbookOpen(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeWorkbookOpen,
		Message: fmt.Sprintf("failed to open workbook %s", path),
		Cause:   cause,
	}
}

func SheetNotFound(path, sheet string) *AppError {
	return New(CodeSheetNotFound, fmt.Sprintf("worksheet %q not found in %s", sheet, path))
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

// RowInvalid reports a malformed sheet row; row is the 1-based sheet row number.
func RowInvalid(job string, row int, message string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("job %s, row %d: %s", job, row, message))
}

func RenderError(message string, cause error) *AppError {
	return &AppError{Code: CodeRenderError, Message: message, Cause: cause}
}

func OutputIO(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeOutputIO,
		Message: fmt.Sprintf("failed to write output %s", path),
		Cause:   cause,
	}
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
