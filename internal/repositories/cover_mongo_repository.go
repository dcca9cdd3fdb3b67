package repositories

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"covershop/internal/models"
)

// MongoCoverRepository is a MongoDB implementation of CoverRepository.
type MongoCoverRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoCoverRepository creates a new instance of MongoCoverRepository.
func NewMongoCoverRepository(db *mongo.Database, timeout time.Duration) *MongoCoverRepository {
	return &MongoCoverRepository{
		coll:    db.Collection(coversCollection),
		timeout: timeout,
	}
}

// List returns the normalized covers matching the filter, newest first.
// Documents that fail normalization are logged and skipped so one corrupt
// record does not abort the whole listing.
func (r *MongoCoverRepository) List(ctx context.Context, filter models.CoverFilter) ([]models.Cover, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, BuildCoverQuery(filter), opts)
	if err != nil {
		return nil, storeErr("list covers", err)
	}
	defer cur.Close(ctx)

	covers := []models.Cover{}
	for cur.Next(ctx) {
		var raw models.RawCover
		if err := cur.Decode(&raw); err != nil {
			log.Printf("Skipping undecodable cover document: %v", err)
			continue
		}
		cover, err := models.NormalizeCover(raw)
		if err != nil {
			log.Printf("Skipping invalid cover document: %v", err)
			continue
		}
		covers = append(covers, *cover)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list covers", err)
	}
	return covers, nil
}

// GetByID returns one normalized cover by its ID.
func (r *MongoCoverRepository) GetByID(ctx context.Context, id string) (*models.Cover, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var raw models.RawCover
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get cover", err)
	}
	return models.NormalizeCover(raw)
}

// Create inserts a fully populated cover document.
func (r *MongoCoverRepository) Create(ctx context.Context, cover *models.Cover) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, cover); err != nil {
		return storeErr("create cover", err)
	}
	return nil
}

// Update applies a partial update and returns the updated, normalized cover.
// updatedAt is unconditionally refreshed.
func (r *MongoCoverRepository) Update(ctx context.Context, id string, update models.CoverUpdate) (*models.Cover, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	set := BuildCoverUpdate(update, time.Now().UTC())
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, storeErr("update cover", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a cover by its ID.
func (r *MongoCoverRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete cover", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
