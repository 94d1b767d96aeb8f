package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message" example:"College not found"`
	// Error carries the internal error text when server.expose_error_details is on.
	Error string `json:"error,omitempty" example:"store unavailable: find colleges: connection refused"`
}

// NewErrorResponse creates an ErrorResponse with only a message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
