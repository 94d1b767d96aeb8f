package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CollegeID primitive.ObjectID `bson:"collegeId"`
	UserID    string             `bson:"userId"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *favoriteDocument) toModel() *models.Favorite {
	return &models.Favorite{
		ID:        d.ID.Hex(),
		CollegeID: d.CollegeID.Hex(),
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// FavoriteRepository handles favorite documents. Uniqueness of (collegeId, userId) is
// enforced by the index created in EnsureIndexes.
type FavoriteRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(coll *mongo.Collection, timeout time.Duration) *FavoriteRepository {
	return &FavoriteRepository{coll: coll, timeout: timeout}
}

// FindByUser returns the user's favorites without their colleges
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing find favorites query")
		return nil, storeError("find favorites", err)
	}
	defer cursor.Close(ctx)

	var docs []favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("decode favorites", err)
	}

	favorites := make([]*models.Favorite, 0, len(docs))
	for i := range docs {
		favorites = append(favorites, docs[i].toModel())
	}
	return favorites, nil
}

// FindOne returns the favorite for the college and user
func (r *FavoriteRepository) FindOne(ctx context.Context, collegeID, userID string) (*models.Favorite, error) {
	oid, err := parseObjectID(collegeID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc favoriteDocument
	if err := r.coll.FindOne(ctx, bson.M{"collegeId": oid, "userId": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, storeError("find favorite", err)
	}
	return doc.toModel(), nil
}

// Create inserts a favorite
func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	collegeOID, err := parseObjectID(favorite.CollegeID)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	doc := favoriteDocument{
		ID:        primitive.NewObjectID(),
		CollegeID: collegeOID,
		UserID:    favorite.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicate
		}
		logger.Error().Err(err).Str("collegeID", favorite.CollegeID).Msg("Error inserting favorite")
		return storeError("insert favorite", err)
	}

	favorite.ID = doc.ID.Hex()
	favorite.CreatedAt = now
	favorite.UpdatedAt = now
	return nil
}

// DeleteByID removes a favorite by ID
func (r *FavoriteRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return r.deleteOne(ctx, bson.M{"_id": oid})
}

// DeleteByCollege removes the user's favorite for the college
func (r *FavoriteRepository) DeleteByCollege(ctx context.Context, collegeID, userID string) error {
	oid, err := parseObjectID(collegeID)
	if err != nil {
		return err
	}
	return r.deleteOne(ctx, bson.M{"collegeId": oid, "userId": userID})
}

func (r *FavoriteRepository) deleteOne(ctx context.Context, filter bson.M) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting favorite")
		return storeError("delete favorite", err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
