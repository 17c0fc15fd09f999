package errors

import "fmt"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AppError is the application error type carried across package boundaries.
type AppError struct {
	Code      string
	Message   string
	Severity  Severity
	Retryable bool
	cause     error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// NewExternalAPIError wraps a failure from an outbound platform call.
func NewExternalAPIError(apiName string, cause error) *AppError {
	return &AppError{
		Code:      "E100",
		Message:   fmt.Sprintf("external API error: %s", apiName),
		Severity:  SeverityMedium,
		Retryable: true,
		cause:     cause,
	}
}

// NewStorageError wraps a failure from the context store.
func NewStorageError(cause error) *AppError {
	var underlyingMsg string
	if cause != nil {
		underlyingMsg = cause.Error()
	}

	return &AppError{
		Code:      "E200",
		Message:   fmt.Sprintf("storage error: %s", underlyingMsg),
		Severity:  SeverityHigh,
		Retryable: true,
		cause:     cause,
	}
}

// NewWebhookError wraps a malformed or unverifiable webhook delivery.
func NewWebhookError(msg string) *AppError {
	return &AppError{
		Code:      "E300",
		Message:   msg,
		Severity:  SeverityLow,
		Retryable: false,
		cause:     nil,
	}
}
