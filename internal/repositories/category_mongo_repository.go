package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"covershop/internal/models"
)

// MongoCategoryRepository is a MongoDB implementation of CategoryRepository.
type MongoCategoryRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoCategoryRepository creates a new instance of MongoCategoryRepository.
func NewMongoCategoryRepository(db *mongo.Database, timeout time.Duration) *MongoCategoryRepository {
	return &MongoCategoryRepository{
		coll:    db.Collection(categoriesCollection),
		timeout: timeout,
	}
}

// List returns all categories.
func (r *MongoCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, storeErr("list categories", err)
	}
	return categories, nil
}

// GetByName returns the category with the exact, case-sensitive name.
func (r *MongoCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get category by name", err)
	}
	return &category, nil
}

// Create inserts a new category.
func (r *MongoCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return storeErr("create category", err)
	}
	return nil
}

// Delete removes a category by its ID. Covers referencing it keep their
// (now dangling) category ids.
func (r *MongoCategoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete category", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
