package dto

// HealthResponse is the GET /api/health body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the uniform error body. Details is populated only for
// summarization failures, mirroring what the browser client displays.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
