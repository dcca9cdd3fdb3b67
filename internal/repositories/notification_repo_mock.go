package repositories

import (
	"context"
	"sort"
	"sync"

	"covershop/internal/models"
)

// MockNotificationRepository is an in-memory implementation of NotificationRepository.
type MockNotificationRepository struct {
	notifications map[string]models.Notification
	mu            sync.RWMutex
}

// NewMockNotificationRepository creates a new instance of MockNotificationRepository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]models.Notification),
	}
}

// List returns all notification requests, newest first.
func (r *MockNotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		list = append(list, n)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Create adds a new notification request.
func (r *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[notification.ID] = *notification
	return nil
}

// UpdateStatus sets the status of one notification.
func (r *MockNotificationRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	n.Status = status
	r.notifications[id] = n
	return &n, nil
}
