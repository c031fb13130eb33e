package dto

// SummarizeRequest is the JSON body of POST /api/summarize.
type SummarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

// SummarizeResponse carries the generated Markdown summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}
