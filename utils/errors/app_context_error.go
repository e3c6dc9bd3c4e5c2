package errors

import (
	"fmt"
	"net/http"
)

// AppContextError represents an error with rich context information:
// which Clean Architecture layer it crossed, which component raised it,
// and which operation was in flight.
type AppContextError struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"` // Specific component/service name
	Operation string                 `json:"operation,omitempty"` // Specific operation/method name
	Cause     error                  `json:"-"`                   // Underlying error (not serialized)
	Context   map[string]interface{} `json:"context,omitempty"`   // Additional context information
}

// Error implements the error interface
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case "VALIDATION_ERROR":
		return http.StatusBadRequest
	case "AUTH_ERROR":
		return http.StatusUnauthorized
	case "NOT_FOUND_ERROR":
		return http.StatusNotFound
	case "CONFLICT_ERROR":
		return http.StatusConflict
	case "RATE_LIMIT_ERROR":
		return http.StatusTooManyRequests
	case "EXTERNAL_API_ERROR":
		return http.StatusBadGateway
	case "TIMEOUT_ERROR":
		return http.StatusGatewayTimeout
	case "DATABASE_ERROR":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// HTTPContextResponse represents the structure of error responses sent to clients
type HTTPContextResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`
	Component string                 `json:"component,omitempty"`
	Operation string                 `json:"operation,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response
func (e *AppContextError) ToHTTPResponse() HTTPContextResponse {
	return HTTPContextResponse{
		Error:     "error",
		Code:      e.Code,
		Message:   e.Message,
		Layer:     e.Layer,
		Component: e.Component,
		Operation: e.Operation,
		Context:   e.Context,
	}
}

// IsRetryable determines if the error represents a retryable condition
func (e *AppContextError) IsRetryable() bool {
	switch e.Code {
	case "RATE_LIMIT_ERROR", "TIMEOUT_ERROR", "EXTERNAL_API_ERROR":
		return true
	default:
		return false
	}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext creates a new AppContextError by enriching an existing error with additional context
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]interface{},
) *AppContextError {
	mergedContext := make(map[string]interface{})
	for k, v := range err.Context {
		mergedContext[k] = v
	}
	for k, v := range additionalContext {
		mergedContext[k] = v
	}

	return &AppContextError{
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   mergedContext,
	}
}

// NewExternalAPIContextError creates an upstream-provider error with context
func NewExternalAPIContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "external_api"
	return NewAppContextError("EXTERNAL_API_ERROR", message, layer, component, operation, cause, context)
}

// NewDatabaseContextError creates a database error with context
func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "database"
	return NewAppContextError("DATABASE_ERROR", message, layer, component, operation, cause, context)
}

// NewValidationContextError creates a validation error with context
func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "validation"
	return NewAppContextError("VALIDATION_ERROR", message, layer, component, operation, nil, context)
}

// NewAuthContextError creates an authentication error with context
func NewAuthContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "auth"
	return NewAppContextError("AUTH_ERROR", message, layer, component, operation, cause, context)
}

// NewNotFoundContextError creates a missing-resource error with context
func NewNotFoundContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "not_found"
	return NewAppContextError("NOT_FOUND_ERROR", message, layer, component, operation, nil, context)
}

// NewUnknownContextError creates an unknown error with context
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = "unknown"
	return NewAppContextError("UNKNOWN_ERROR", message, layer, component, operation, cause, context)
}
