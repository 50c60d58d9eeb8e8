package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// registerRequest accepts any non-empty username and password; length policy
// is not enforced server-side.
type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type adminResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type submitFeedbackRequest struct {
	// Timestamp is optional; a zero value defaults to the server's clock.
	Feedback  string    `json:"feedback" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// feedbackItem deliberately omits the submitting username; the listing is
// visible to every authenticated caller.
type feedbackItem struct {
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}

type feedbackWindowResponse struct {
	Current    []feedbackItem `json:"current"`
	Historical []feedbackItem `json:"historical"`
}

type analyticsResponse struct {
	Topics    []string `json:"topics"`
	Sentiment string   `json:"sentiment"`
	Trends    []string `json:"trends"`
}
