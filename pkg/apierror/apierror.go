package apierror

import (
	"fmt"
	"sort"
	"strings"
)

// APIError carries an HTTP status together with field-keyed messages in the
// shape the response envelope expects. Errors without a natural field use the
// "general" key.
type APIError struct {
	HTTPStatus int                 `json:"-"`
	Errors     map[string][]string `json:"errors"`
}

func (e *APIError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Errors[field], "; ")))
	}

	return strings.Join(parts, ", ")
}

// New builds an error with a single message under the "general" key.
func New(message string, status int) *APIError {
	return &APIError{
		HTTPStatus: status,
		Errors:     map[string][]string{"general": {message}},
	}
}

// WithFields builds an error from per-field message lists, typically the
// output of a validation schema.
func WithFields(fields map[string][]string, status int) *APIError {
	return &APIError{HTTPStatus: status, Errors: fields}
}
