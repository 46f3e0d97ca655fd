package crmsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is any non-2xx response that is not a validation failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the server answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ValidationError is a 422 response carrying the server's field-level list.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// parseErrorResponse turns an error response body into a typed error. Bodies
// that don't match either shape still produce an APIError with whatever the
// status line said.
func parseErrorResponse(statusCode int, body []byte) error {
	if statusCode == http.StatusUnprocessableEntity {
		var resp ValidationErrorResponse
		if err := json.Unmarshal(body, &resp); err == nil && len(resp.Errors) > 0 {
			return &ValidationError{Errors: resp.Errors}
		}
	}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return &APIError{StatusCode: statusCode, Message: resp.Message}
	}

	return &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}
