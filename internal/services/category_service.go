package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"covershop/internal/models"
	"covershop/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// ListCategories retrieves all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

// CreateCategory creates a new category. The name must not collide with an
// existing one; the comparison is exact and case-sensitive, and only happens
// here at creation time.
func (s *CategoryService) CreateCategory(ctx context.Context, create models.CategoryCreate) (*models.Category, error) {
	existing, err := s.repo.GetByName(ctx, create.Name)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateName
	}

	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        create.Name,
		Description: create.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by its ID. Covers referencing it are left
// untouched; dangling references are tolerated by the catalog.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
