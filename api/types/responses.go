package types

// Status constants for JSON responses (health, version, 404)
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse is the JSON error body for non-Torznab endpoints
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
