// Package envelope defines the two response shapes every endpoint returns.
//
// A request ends in exactly one of them:
//
//	{ "success": true, "data": ..., "message": "..." }
//	{ "error": true, "message": "...", "status_code": 404, "details": {...} }
//
// The builders only format. They never validate and never decide a status.
package envelope

// SuccessEnvelope wraps a successful result.
type SuccessEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Details carries extra failure information.
type Details struct {
	ValidationErrors []string `json:"validation_errors"`
}

// FailureEnvelope wraps a failed request. StatusCode always matches the
// status written on the wire.
type FailureEnvelope struct {
	Error      bool     `json:"error"`
	Message    string   `json:"message"`
	StatusCode int      `json:"status_code"`
	Details    *Details `json:"details,omitempty"`
}

// Success builds a success envelope. An empty message is omitted.
func Success(data any, message string) SuccessEnvelope {
	return SuccessEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Failure builds a failure envelope.
func Failure(message string, status int, details *Details) FailureEnvelope {
	return FailureEnvelope{
		Error:      true,
		Message:    message,
		StatusCode: status,
		Details:    details,
	}
}

// ValidationDetails wraps violations into Details, nil when there are none.
func ValidationDetails(violations []string) *Details {
	if len(violations) == 0 {
		return nil
	}
	return &Details{ValidationErrors: violations}
}
