package errs

import (
	"fmt"
	"net/http"
)

// Codes that do not derive from a status text.
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
)

// statusCode returns the UPPER_CASE status text of status,
// e.g. 404 => "NOT_FOUND".
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// New creates an HTTPError for an arbitrary status.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(status),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// NewInvalidJSONError reports a body that is absent, not JSON, or not a JSON object.
func NewInvalidJSONError() *HTTPError {
	return &HTTPError{
		Code:    CodeInvalidJSON,
		Message: "Request body must be valid JSON",
		Status:  http.StatusBadRequest,
	}
}

// NewValidationError creates a 400 carrying every violation found.
func NewValidationError(message string, violations []string) *HTTPError {
	return &HTTPError{
		Code:       CodeValidationFailed,
		Message:    message,
		Status:     http.StatusBadRequest,
		Violations: violations,
	}
}

// NewNotFoundError creates a 404 naming the resource kind and the identifier
// that was looked up.
func NewNotFoundError(resource string, identifier any) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(resource) + "_NOT_FOUND",
		Message: fmt.Sprintf("%s with identifier '%v' not found", resource, identifier),
		Status:  http.StatusNotFound,
	}
}

// NewRouteNotFoundError is returned when no route matches the request path.
func NewRouteNotFoundError() *HTTPError {
	return &HTTPError{
		Code:    CodeRouteNotFound,
		Message: "Resource not found",
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a 405 for a path that exists under another method.
func NewMethodNotAllowedError(method string) *HTTPError {
	return New(http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed for this endpoint", method))
}

// NewTooManyRequestsError creates a 429 for rate-limited clients.
func NewTooManyRequestsError() *HTTPError {
	return New(http.StatusTooManyRequests, "Too many requests, please slow down")
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is generic on purpose: internal details only go to the logs.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, "An unexpected error occurred")
}
