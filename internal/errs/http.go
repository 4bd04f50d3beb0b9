// Package errs defines the error types the API returns to clients.
//
// Errors are created where a problem is detected and travel up as plain Go
// errors. The global error handler is the only place that turns them into a
// response, so every failure leaves the service in the same shape.
//
//   - Return consistent error shapes to API clients (JSON).
//   - Carry the list of validation violations for bad payloads.
//   - Provide errors that play nicely with Go's standard errors package.
package errs

import (
	"strings"

	"github.com/deppfellow/employee-api/internal/envelope"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND"), logged only.
//   - Message: human-friendly message sent to the client.
//   - Status: HTTP status code.
//   - Violations: validation errors, rendered under details.validation_errors.
type HTTPError struct {
	Code       string
	Message    string
	Status     int
	Violations []string
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status/etc, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:       e.Code,
		Message:    message,
		Status:     e.Status,
		Violations: e.Violations,
	}
}

// Envelope renders the failure envelope for this error.
func (e *HTTPError) Envelope() envelope.FailureEnvelope {
	return envelope.Failure(e.Message, e.Status, envelope.ValidationDetails(e.Violations))
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return upper.String(strings.ReplaceAll(str, " ", "_"))
}
