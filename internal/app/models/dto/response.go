package dto

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Removed from favorites"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Server is running"`
}
