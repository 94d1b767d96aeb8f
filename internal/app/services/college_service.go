package services

import (
	"context"
	"errors"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/metrics"
)

// CollegeService defines the college directory operations
type CollegeService interface {
	ListColleges(ctx context.Context, q models.CollegeQuery) ([]*models.College, error)
	GetCollege(ctx context.Context, id string) (*models.College, error)
}

// collegeServiceImpl implements CollegeService
type collegeServiceImpl struct {
	resolver *Resolver
}

// NewCollegeService creates a new college service instance
func NewCollegeService(resolver *Resolver) CollegeService {
	return &collegeServiceImpl{resolver: resolver}
}

// ListColleges returns the colleges matching q
func (s *collegeServiceImpl) ListColleges(ctx context.Context, q models.CollegeQuery) ([]*models.College, error) {
	return resolveList(s.resolver, entityColleges, "list",
		func(repos *repositories.Repositories) ([]*models.College, error) {
			return repos.CollegeRepository.Find(ctx, q)
		},
		func(repos *repositories.Repositories) (int64, error) {
			return repos.CollegeRepository.Count(ctx)
		},
	)
}

// GetCollege returns one college. A miss falls back like an empty list does.
func (s *collegeServiceImpl) GetCollege(ctx context.Context, id string) (*models.College, error) {
	r := s.resolver

	college, err := r.store.CollegeRepository.FindByID(ctx, id)
	switch {
	case err == nil:
		r.metrics.StoreUp(entityColleges, true)
		return college, nil
	case r.storeFailed(entityColleges, "get", err):
		return s.getFallback(ctx, id)
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	reason := r.emptyReason(entityColleges, "get", func() (int64, error) {
		return r.store.CollegeRepository.Count(ctx)
	})
	if reason == "" {
		return nil, apperrors.ErrCollegeNotFound
	}
	if reason != metrics.ReasonStoreFailure {
		r.useFallback(entityColleges, "get", reason, nil)
	}
	return s.getFallback(ctx, id)
}

func (s *collegeServiceImpl) getFallback(ctx context.Context, id string) (*models.College, error) {
	college, err := s.resolver.fallback.CollegeRepository.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrCollegeNotFound
	}
	return college, err
}

