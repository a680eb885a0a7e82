package dto

import "time"

// ErrorCode identifies the failure class of an API error
type ErrorCode string

// Error codes returned by the API
const (
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_005"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_006"
	ErrorCodeRateLimited        ErrorCode = "AUTH_010"
	ErrorCodeResourceNotFound   ErrorCode = "RES_001"
	ErrorCodeValidationFailed   ErrorCode = "VAL_001"
	ErrorCodeInternalServer     ErrorCode = "SRV_001"
)

// ErrorSeverity grades an API error for clients and logs
type ErrorSeverity string

const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail describes a single API error
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_001"`
	Message  string        `json:"message" example:"Invalid identifier"`
	Field    string        `json:"field,omitempty" example:"id"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse is the envelope for errors that are not form rejections
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail returns an error-severity detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message, Severity: ErrorSeverityError}
}

// WithField names the offending request field
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails attaches the rejected value or path
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse wraps detail in the error envelope
func NewErrorResponse(detail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{Error: detail, Timestamp: time.Now()}
}
