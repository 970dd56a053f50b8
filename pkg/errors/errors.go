package errors

import "fmt"

// Error codes
const (
	CodeAppError   = "APP_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeService    = "SERVICE_ERROR"
	CodeQuota      = "QUOTA_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
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

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

type APIError struct {
	*AppError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AppError: NewAppError(message, CodeAPIError, statusCode, context),
	}
}

// WithCause keeps the concrete type so errors.As still matches *APIError.
func (e *APIError) WithCause(cause error) *APIError {
	e.AppError = e.AppError.WithCause(cause)
	return e
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: NewAppError(message, CodeValidation, 400, map[string]any{
			"field": field,
			"value": value,
		}),
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: NewAppError(message, CodeCache, 500, map[string]any{
			"operation": operation,
			"key":       key,
		}).WithCause(cause),
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*AppError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		AppError: NewAppError(message, CodeService, 500, map[string]any{
			"service":   service,
			"operation": operation,
		}).WithCause(cause),
		Service:   service,
		Operation: operation,
	}
}

// QuotaError signals that the daily YouTube API budget would be exceeded.
type QuotaError struct {
	*AppError
	Used      int
	Limit     int
	Requested int
}

func NewQuotaError(used, limit, requested int) *QuotaError {
	return &QuotaError{
		AppError: NewAppError(
			fmt.Sprintf("API quota exhausted: used %d/%d, requested %d", used, limit, requested),
			CodeQuota, 429, map[string]any{
				"used":      used,
				"limit":     limit,
				"requested": requested,
			}),
		Used:      used,
		Limit:     limit,
		Requested: requested,
	}
}
