package errors

import "fmt"

// Error codes attached to AppError. INVALID_INPUT is the only client-caused
// code; everything else reports a server or deployment problem.
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeTemplateMissing = "TEMPLATE_MISSING"
	CodeTemplateInvalid = "TEMPLATE_INVALID"
	CodeInternalError   = "INTERNAL_ERROR"
)

// AppError is an error with a stable code and a human-readable message.
// Message alone is what clients see; Cause is for logs.
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

func newError(code, format string, args []any) *AppError {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	return &AppError{Code: code, Message: message}
}

// ConfigInvalid reports a bad or incomplete configuration value.
func ConfigInvalid(format string, args ...any) *AppError {
	return newError(CodeConfigInvalid, format, args)
}

// InvalidInput reports a request the client can correct.
func InvalidInput(format string, args ...any) *AppError {
	return newError(CodeInvalidInput, format, args)
}

// TemplateMissing reports a configured template workbook absent from disk.
// Deployment problem, not a client problem.
func TemplateMissing(format string, args ...any) *AppError {
	return newError(CodeTemplateMissing, format, args)
}

// TemplateInvalid reports a template workbook whose Inputs sheet or header
// columns do not resolve.
func TemplateInvalid(format string, args ...any) *AppError {
	return newError(CodeTemplateInvalid, format, args)
}

// InternalError reports a failure the caller cannot act on.
func InternalError(format string, args ...any) *AppError {
	return newError(CodeInternalError, format, args)
}

// Wrap annotates err with a message, keeping the original code when err is
// already an AppError so the HTTP status mapping survives wrapping.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{Code: appErr.Code, Message: message, Cause: appErr}
	}
	return &AppError{Code: CodeInternalError, Message: message, Cause: err}
}

// GetCode returns err's code, or "UNKNOWN" for plain errors.
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}
