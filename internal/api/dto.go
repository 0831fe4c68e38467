package api

// GenerateRequest is the form payload. No field is validated server-side.
type GenerateRequest struct {
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Style       string `json:"style,omitempty"`
	Language    string `json:"language,omitempty"`
}

type GenerateResponse struct {
	Result string `json:"result"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

const (
	// FallbackResult is returned with 200 when the provider has no text.
	FallbackResult = "Sorry, an error occurred."

	ProviderFailureMessage = "Failed to contact the AI service"
	InvalidRequestMessage  = "Invalid request body"

	RequestIDHeader = "X-Request-ID"
)
