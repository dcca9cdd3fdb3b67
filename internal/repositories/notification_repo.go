package repositories

import (
	"context"

	"covershop/internal/models"
)

// NotificationRepository defines the interface for notification data access.
type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	UpdateStatus(ctx context.Context, id, status string) (*models.Notification, error)
}
