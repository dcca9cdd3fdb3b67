package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"covershop/internal/models"
	"covershop/internal/repositories"
)

// ErrInvalidStatus means a status transition named an unknown status.
var ErrInvalidStatus = errors.New("invalid notification status")

// EventPublisher publishes domain events. Publishing is best-effort: a
// failure is logged but never fails the originating request.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// NotificationService handles business logic related to pre-order
// notification requests.
type NotificationService struct {
	repo      repositories.NotificationRepository
	publisher EventPublisher
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(repo repositories.NotificationRepository, publisher EventPublisher) *NotificationService {
	return &NotificationService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListNotifications retrieves all notification requests, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx)
}

// CreateNotification stores a new pre-order request with status Pending and
// publishes a notification.requested event for the admin channel.
func (s *NotificationService) CreateNotification(ctx context.Context, create models.NotificationCreate) (*models.Notification, error) {
	notification := &models.Notification{
		ID:        uuid.New().String(),
		Phone:     create.Phone,
		ModelName: create.ModelName,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"notificationID": notification.ID,
			"phone":          notification.Phone,
			"modelName":      notification.ModelName,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal notification event: %v", err)
		} else if err := s.publisher.Publish("notification.requested", body); err != nil {
			log.Printf("Warning: Failed to publish notification event for %s: %v", notification.ID, err)
		}
	} else {
		log.Println("Event publisher is not initialized. Skipping notification event.")
	}

	return notification, nil
}

// UpdateNotificationStatus transitions a notification to a new status.
func (s *NotificationService) UpdateNotificationStatus(ctx context.Context, id, status string) (*models.Notification, error) {
	if status == "" {
		return nil, models.ErrEmptyUpdate
	}
	validStatuses := map[string]bool{
		models.StatusPending:    true,
		models.StatusInProgress: true,
		models.StatusCompleted:  true,
		models.StatusCancelled:  true,
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
