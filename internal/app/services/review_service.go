package services

import (
	"context"
	"strings"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/validation"
)

// CreateReviewInput is a review submission. A nil Rating means the field was absent.
type CreateReviewInput struct {
	CollegeName string
	Rating      *int
	Comment     string
}

// ReviewService defines the review operations
type ReviewService interface {
	ListReviews(ctx context.Context) ([]*models.Review, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*models.Review, error)
}

// reviewServiceImpl implements ReviewService
type reviewServiceImpl struct {
	resolver *Resolver
}

// NewReviewService creates a new review service instance
func NewReviewService(resolver *Resolver) ReviewService {
	return &reviewServiceImpl{resolver: resolver}
}

// reviewSubmission carries the rules a submission must satisfy
type reviewSubmission struct {
	CollegeName string `validate:"required"`
	Rating      *int   `validate:"required,min=1,max=5"`
	Comment     string `validate:"required"`
}

// validateReview checks the submission and returns the review to store. Missing fields
// are reported before an out of range rating.
func validateReview(input CreateReviewInput) (*models.Review, error) {
	sub := reviewSubmission{
		CollegeName: strings.TrimSpace(input.CollegeName),
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
	}

	if err := validation.Struct(sub); err != nil {
		if validation.HasTag(err, "required") {
			return nil, apperrors.ErrReviewFieldsRequired
		}
		return nil, apperrors.ErrReviewRatingRange
	}

	return &models.Review{
		CollegeName: sub.CollegeName,
		Rating:      *sub.Rating,
		Comment:     sub.Comment,
	}, nil
}

// ListReviews returns reviews, newest first
func (s *reviewServiceImpl) ListReviews(ctx context.Context) ([]*models.Review, error) {
	return resolveList(s.resolver, entityReviews, "list",
		func(repos *repositories.Repositories) ([]*models.Review, error) {
			return repos.ReviewRepository.FindAll(ctx)
		},
		func(repos *repositories.Repositories) (int64, error) {
			return repos.ReviewRepository.Count(ctx)
		},
	)
}

// CreateReview validates and stores a review. When the store is down the review is kept
// in the fallback dataset for the lifetime of the process.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, input CreateReviewInput) (*models.Review, error) {
	review, err := validateReview(input)
	if err != nil {
		return nil, err
	}

	r := s.resolver
	err = r.store.ReviewRepository.Create(ctx, review)
	if err == nil {
		r.metrics.StoreUp(entityReviews, true)
		return review, nil
	}
	if !r.storeFailed(entityReviews, "create", err) {
		return nil, err
	}

	review.ID = ""
	if err := r.fallback.ReviewRepository.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
