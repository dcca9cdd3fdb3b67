package repositories

import (
	"context"

	"covershop/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}
