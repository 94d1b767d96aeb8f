// Package mongodb implements the repositories on MongoDB collections.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreName identifies MongoDB in logs and metrics
const StoreName = "mongodb"

// Collection names
const (
	CollegesCollection  = "colleges"
	ReviewsCollection   = "reviews"
	FavoritesCollection = "favorites"
)

// NewRepositories creates the MongoDB repositories on db
func NewRepositories(db *mongo.Database, timeout time.Duration) *repositories.Repositories {
	return &repositories.Repositories{
		Name:               StoreName,
		CollegeRepository:  NewCollegeRepository(db.Collection(CollegesCollection), timeout),
		ReviewRepository:   NewReviewRepository(db.Collection(ReviewsCollection), timeout),
		FavoriteRepository: NewFavoriteRepository(db.Collection(FavoritesCollection), timeout),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The favorites index
// enforces one favorite per college and user.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(FavoritesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "collegeId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return storeError("create favorites index", err)
	}

	_, err = db.Collection(ReviewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return storeError("create reviews index", err)
	}
	return nil
}

// storeError marks a driver error as a store failure
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreUnavailable, op, err)
}

// withTimeout bounds a single store call
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// parseObjectID converts an API id. Ids that are not ObjectIDs cannot exist in the store.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repositories.ErrNotFound
	}
	return oid, nil
}
