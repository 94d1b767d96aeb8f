package mongodb

import (
	"context"
	"time"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CollegeName string             `bson:"collegeName"`
	Rating      int                `bson:"rating"`
	Comment     string             `bson:"comment"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d *reviewDocument) toModel() *models.Review {
	return &models.Review{
		ID:          d.ID.Hex(),
		CollegeName: d.CollegeName,
		Rating:      d.Rating,
		Comment:     d.Comment,
		CreatedAt:   d.CreatedAt,
	}
}

// ReviewRepository handles review documents
type ReviewRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(coll *mongo.Collection, timeout time.Duration) *ReviewRepository {
	return &ReviewRepository{coll: coll, timeout: timeout}
}

// FindAll returns all reviews, newest first
func (r *ReviewRepository) FindAll(ctx context.Context) ([]*models.Review, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find reviews query")
		return nil, storeError("find reviews", err)
	}
	defer cursor.Close(ctx)

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.Error().Err(err).Msg("Error decoding review documents")
		return nil, storeError("decode reviews", err)
	}

	reviews := make([]*models.Review, 0, len(docs))
	for i := range docs {
		reviews = append(reviews, docs[i].toModel())
	}
	return reviews, nil
}

// Count returns the number of review documents
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeError("count reviews", err)
	}
	return n, nil
}

// Create inserts a review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	doc := reviewDocument{
		ID:          primitive.NewObjectID(),
		CollegeName: review.CollegeName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Msg("Error inserting review")
		return storeError("insert review", err)
	}

	review.ID = doc.ID.Hex()
	review.CreatedAt = now
	return nil
}
