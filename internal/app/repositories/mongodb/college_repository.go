package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collegeDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Location string             `bson:"location"`
	Course   string             `bson:"course"`
	Fee      int64              `bson:"fee"`
}

func (d *collegeDocument) toModel() *models.College {
	return &models.College{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Location: d.Location,
		Course:   d.Course,
		Fee:      d.Fee,
	}
}

// CollegeRepository handles college documents
type CollegeRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(coll *mongo.Collection, timeout time.Duration) *CollegeRepository {
	return &CollegeRepository{coll: coll, timeout: timeout}
}

// collegeFilter translates q into a MongoDB filter
func collegeFilter(q models.CollegeQuery) bson.M {
	filter := bson.M{}
	if q.Location != "" {
		filter["location"] = q.Location
	}
	if q.Course != "" {
		filter["course"] = q.Course
	}
	if q.MinFee != nil || q.MaxFee != nil {
		fee := bson.M{}
		if q.MinFee != nil {
			fee["$gte"] = *q.MinFee
		}
		if q.MaxFee != nil {
			fee["$lte"] = *q.MaxFee
		}
		filter["fee"] = fee
	}
	if q.Search != "" {
		// Search is a plain substring, not a pattern.
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
	}
	return filter
}

// collegeFindOptions translates the requested order. Ties, and natural order, follow _id,
// which ReplaceAll assigns in insertion order.
func collegeFindOptions(q models.CollegeQuery) *options.FindOptions {
	byInsertion := bson.E{Key: "_id", Value: 1}
	opts := options.Find()
	switch q.SortBy {
	case models.SortFeeAsc:
		opts.SetSort(bson.D{{Key: "fee", Value: 1}, byInsertion})
	case models.SortFeeDesc:
		opts.SetSort(bson.D{{Key: "fee", Value: -1}, byInsertion})
	default:
		opts.SetSort(bson.D{byInsertion})
	}
	return opts
}

// Find returns colleges matching q
func (r *CollegeRepository) Find(ctx context.Context, q models.CollegeQuery) ([]*models.College, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	filter := collegeFilter(q)
	logger.Debug().Interface("filter", filter).Str("sortBy", string(q.SortBy)).Msg("Querying colleges")

	cursor, err := r.coll.Find(ctx, filter, collegeFindOptions(q))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find colleges query")
		return nil, storeError("find colleges", err)
	}
	defer cursor.Close(ctx)

	var docs []collegeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		logger.Error().Err(err).Msg("Error decoding college documents")
		return nil, storeError("decode colleges", err)
	}

	colleges := make([]*models.College, 0, len(docs))
	for i := range docs {
		colleges = append(colleges, docs[i].toModel())
	}
	return colleges, nil
}

// FindByID retrieves a college by ID
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc collegeDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		logger.Error().Err(err).Str("collegeID", id).Msg("Error finding college by ID")
		return nil, storeError("find college", err)
	}
	return doc.toModel(), nil
}

// FindByIDs retrieves the colleges that exist among ids
func (r *CollegeRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*models.College, error) {
	found := make(map[string]*models.College, len(ids))

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := parseObjectID(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return found, nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		logger.Error().Err(err).Msg("Error finding colleges by IDs")
		return nil, storeError("find colleges by ids", err)
	}
	defer cursor.Close(ctx)

	var docs []collegeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("decode colleges", err)
	}
	for i := range docs {
		c := docs[i].toModel()
		found[c.ID] = c
	}
	return found, nil
}

// Count returns the number of college documents
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return 0, storeError("count colleges", err)
	}
	return n, nil
}

// ReplaceAll deletes every college and inserts colleges
func (r *CollegeRepository) ReplaceAll(ctx context.Context, colleges []*models.College) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return storeError("clear colleges", err)
	}
	if len(colleges) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(colleges))
	for _, c := range colleges {
		docs = append(docs, collegeDocument{
			ID:       primitive.NewObjectID(),
			Name:     c.Name,
			Location: c.Location,
			Course:   c.Course,
			Fee:      c.Fee,
		})
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return storeError("insert colleges", err)
	}
	for i, c := range colleges {
		c.ID = docs[i].(collegeDocument).ID.Hex()
	}
	return nil
}
