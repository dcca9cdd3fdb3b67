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

// MongoNotificationRepository is a MongoDB implementation of NotificationRepository.
type MongoNotificationRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoNotificationRepository creates a new instance of MongoNotificationRepository.
func NewMongoNotificationRepository(db *mongo.Database, timeout time.Duration) *MongoNotificationRepository {
	return &MongoNotificationRepository{
		coll:    db.Collection(notificationsCollection),
		timeout: timeout,
	}
}

// List returns all notification requests, newest first. Records written before
// the status field existed normalize to Pending; invalid records are skipped.
func (r *MongoNotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	defer cur.Close(ctx)

	notifications := []models.Notification{}
	for cur.Next(ctx) {
		var raw models.RawNotification
		if err := cur.Decode(&raw); err != nil {
			log.Printf("Skipping undecodable notification document: %v", err)
			continue
		}
		n, err := models.NormalizeNotification(raw)
		if err != nil {
			log.Printf("Skipping invalid notification document %s: %v", raw.ID, err)
			continue
		}
		notifications = append(notifications, *n)
	}
	if err := cur.Err(); err != nil {
		return nil, storeErr("list notifications", err)
	}
	return notifications, nil
}

// Create inserts a new notification request.
func (r *MongoNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return storeErr("create notification", err)
	}
	return nil
}

// UpdateStatus sets the status of one notification and returns the updated record.
func (r *MongoNotificationRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Notification, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, storeErr("update notification status", err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}

	var raw models.RawNotification
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("get notification", err)
	}
	return models.NormalizeNotification(raw)
}
