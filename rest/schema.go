package rest

// FeedbackPayload is the body of POST /v1/articles/:id/feedback.
type FeedbackPayload struct {
	Vote string `json:"vote"`
}

// FeedbackResponse is the body returned after a successful vote.
type FeedbackResponse struct {
	Message   string `json:"message"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// ErrorResponse is the generic error body. Internal detail never crosses
// the boundary.
type ErrorResponse struct {
	Message string `json:"message"`
}
