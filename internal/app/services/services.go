// Package services holds the business rules of the college directory. Every operation
// runs against the persistent store first and answers from the fallback dataset when
// the Resolver says so.
package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/metrics"
)

// Services groups the application services
type Services struct {
	CollegeService  CollegeService
	ReviewService   ReviewService
	FavoriteService FavoriteService
}

// NewServices wires the services on a shared Resolver
func NewServices(store, fallback *repositories.Repositories, mode string, m *metrics.Metrics, logger zerolog.Logger) *Services {
	resolver := NewResolver(store, fallback, mode, m, logger)
	return &Services{
		CollegeService:  NewCollegeService(resolver),
		ReviewService:   NewReviewService(resolver),
		FavoriteService: NewFavoriteService(resolver),
	}
}
