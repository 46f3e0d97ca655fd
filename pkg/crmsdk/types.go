package crmsdk

import "time"

// Client is a contact record as returned by the API.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	LastName  string    `json:"lastName"`
	Contacts  []Contact `json:"contacts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contact is a (type, value) pair attached to a client, e.g. email or phone.
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ClientPayload is the request body for create and update operations.
type ClientPayload struct {
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	LastName string    `json:"lastName,omitempty"`
	Contacts []Contact `json:"contacts"`
}

// ErrorResponse is the generic error body: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// FieldError is one entry of a 422 validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the 422 body carrying the full problem list.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
