package dto

import "github.com/yigit/collegehub/internal/app/services"

// CreateReviewRequest represents a review submission. Presence and range checks are done
// by the review service so the messages stay the same for every client.
type CreateReviewRequest struct {
	CollegeName string `json:"collegeName" example:"ABC Engineering College"`
	Rating      *int   `json:"rating" example:"5" minimum:"1" maximum:"5"`
	Comment     string `json:"comment" example:"Excellent infrastructure and faculty."`
}

// ToInput converts the request to the service input
func (r *CreateReviewRequest) ToInput() services.CreateReviewInput {
	return services.CreateReviewInput{
		CollegeName: r.CollegeName,
		Rating:      r.Rating,
		Comment:     r.Comment,
	}
}
