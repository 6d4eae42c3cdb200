package dto

import "time"

// ErrorResponse is the single error body shape for every failed request.
// Details maps a field name to its violation message; non-validation errors
// use a single "error" entry.
type ErrorResponse struct {
	Title     string            `json:"title"`
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Exception string            `json:"exception"`
	Details   map[string]string `json:"details"`
}

type TokenRequest struct {
	Username string `json:"username"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
