package repositories

import (
	"context"

	"covershop/internal/models"
)

// CoverRepository defines the interface for cover data access.
type CoverRepository interface {
	List(ctx context.Context, filter models.CoverFilter) ([]models.Cover, error)
	GetByID(ctx context.Context, id string) (*models.Cover, error)
	Create(ctx context.Context, cover *models.Cover) error
	Update(ctx context.Context, id string, update models.CoverUpdate) (*models.Cover, error)
	Delete(ctx context.Context, id string) error
}
