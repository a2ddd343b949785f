package models

// APIResponse is the uniform response envelope used by every endpoint.
type APIResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes a single violated constraint on an input payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
