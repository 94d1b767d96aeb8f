package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/config"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/metrics"
)

// Entities used in fallback logs and metrics
const (
	entityColleges  = "colleges"
	entityReviews   = "reviews"
	entityFavorites = "favorites"
)

// Resolver routes each operation to the persistent store and decides when the fallback
// dataset answers instead.
type Resolver struct {
	store    *repositories.Repositories
	fallback *repositories.Repositories
	mode     string
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewResolver creates a Resolver. An empty mode means config.FallbackStrict and a nil
// metrics disables counting.
func NewResolver(store, fallback *repositories.Repositories, mode string, m *metrics.Metrics, logger zerolog.Logger) *Resolver {
	if mode == "" {
		mode = config.FallbackStrict
	}
	return &Resolver{
		store:    store,
		fallback: fallback,
		mode:     mode,
		metrics:  m,
		logger:   logger,
	}
}

// storeFailed records the outcome of a store call and reports whether err is a store failure
func (r *Resolver) storeFailed(entity, operation string, err error) bool {
	if !apperrors.IsStoreFailure(err) {
		r.metrics.StoreUp(entity, true)
		return false
	}
	r.metrics.StoreUp(entity, false)
	r.useFallback(entity, operation, metrics.ReasonStoreFailure, err)
	return true
}

func (r *Resolver) useFallback(entity, operation, reason string, err error) {
	r.metrics.Fallback(entity, operation, reason)
	event := r.logger.Warn().
		Str("entity", entity).
		Str("operation", operation).
		Str("store", r.store.Name).
		Str("reason", reason)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("Answering from fallback data")
}

// emptyReason decides whether an empty store answer falls back, returning the reason or
// "" to keep the empty answer. count reports the size of the entity's collection.
func (r *Resolver) emptyReason(entity, operation string, count func() (int64, error)) string {
	if r.mode == config.FallbackLegacy {
		return metrics.ReasonEmptyResult
	}

	n, err := count()
	if err != nil {
		if r.storeFailed(entity, operation, err) {
			return metrics.ReasonStoreFailure
		}
		r.logger.Error().Err(err).Str("entity", entity).Msg("Error counting store records")
		return ""
	}
	if n == 0 {
		return metrics.ReasonEmptyStore
	}
	return ""
}

// collegesUnseeded reports whether the store holds no colleges. College listings then come
// from the fallback dataset, and favorites follow them there.
func (r *Resolver) collegesUnseeded(ctx context.Context, entity, operation string) bool {
	n, err := r.store.CollegeRepository.Count(ctx)
	if err != nil {
		if r.storeFailed(entity, operation, err) {
			return true
		}
		r.logger.Error().Err(err).Str("entity", entity).Msg("Error counting store records")
		return false
	}
	if n > 0 {
		return false
	}
	r.useFallback(entity, operation, metrics.ReasonEmptyStore, nil)
	return true
}

// resolveList runs list against the store and, per the fallback mode, against the
// fallback dataset.
func resolveList[T any](
	r *Resolver,
	entity, operation string,
	list func(*repositories.Repositories) ([]T, error),
	count func(*repositories.Repositories) (int64, error),
) ([]T, error) {
	items, err := list(r.store)
	if err != nil {
		if !r.storeFailed(entity, operation, err) {
			return nil, err
		}
		return list(r.fallback)
	}
	r.metrics.StoreUp(entity, true)

	if len(items) > 0 {
		return items, nil
	}

	reason := r.emptyReason(entity, operation, func() (int64, error) { return count(r.store) })
	if reason == "" {
		return items, nil
	}
	if reason != metrics.ReasonStoreFailure {
		r.useFallback(entity, operation, reason, nil)
	}
	return list(r.fallback)
}
