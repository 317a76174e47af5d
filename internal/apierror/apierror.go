// Package apierror defines the error envelopes every 4xx/5xx response of the
// corresponsal API uses. Handlers build them from service sentinels; raw
// store or driver errors never reach a client.
package apierror

// APIError is the single-message envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func (e *APIError) Error() string { return e.Detail }

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
