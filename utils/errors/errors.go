// Package errors provides structured error handling for the FactNet backend.
// It defines error types with codes, messages, causes, and contextual
// information to facilitate debugging across the application layers.
package errors

import (
	"fmt"
	"net/http"
)

// Error code constants for categorizing application errors.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeDatabase   = "DATABASE_ERROR"
	CodeTimeout    = "TIMEOUT_ERROR"
	CodeUnknown    = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information. Layer,
// Component and Operation locate the failure within the clean architecture
// layers (rest, usecase, gateway, driver).
type AppContextError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Layer     string         `json:"layer,omitempty"`
	Component string         `json:"component,omitempty"`
	Operation string         `json:"operation,omitempty"`
	Cause     error          `json:"-"`
	Context   map[string]any `json:"context,omitempty"`
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
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeDatabase, CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// HTTPResponse is the generic error body sent to clients. Only the message
// crosses the boundary; cause and context stay server-side.
type HTTPResponse struct {
	Message string `json:"message"`
}

// ToHTTPResponse converts an AppContextError to an HTTP error response
func (e *AppContextError) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{Message: e.Message}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]any,
) *AppContextError {
	if context == nil {
		context = make(map[string]any)
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

// NewDatabaseContextError creates a database error with context
func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, context)
}

// NewValidationContextError creates a validation error with context
func NewValidationContextError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, nil, context)
}

// NewNotFoundContextError creates a not-found error with context
func NewNotFoundContextError(message, layer, component, operation string, context map[string]any) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, nil, context)
}

// NewUnknownContextError creates an unknown error with context
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]any) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, context)
}

// EnrichWithContext creates a new AppContextError by layering additional
// context onto an existing one.
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]any,
) *AppContextError {
	mergedContext := make(map[string]any)
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
