package dto

import (
	"time"

	"github.com/yigit/collegehub/internal/app/models"
)

// AddFavoriteRequest represents a request to favorite a college
type AddFavoriteRequest struct {
	CollegeID string `json:"collegeId" example:"1"`
	UserID    string `json:"userId,omitempty" example:"default-user"`
}

// FavoriteResponse is a favorite with its college embedded under collegeId
type FavoriteResponse struct {
	ID        string          `json:"_id"`
	College   *models.College `json:"collegeId"`
	UserID    string          `json:"userId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewFavoriteResponse creates a FavoriteResponse from a joined favorite
func NewFavoriteResponse(f *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		College:   f.College,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// NewFavoriteResponses converts a list, never returning nil
func NewFavoriteResponses(favorites []*models.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, NewFavoriteResponse(f))
	}
	return out
}
