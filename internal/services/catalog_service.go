package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"covershop/internal/models"
	"covershop/internal/repositories"
)

// Uploader pushes a binary image stream to the external asset host and
// returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// CatalogService handles business logic related to covers.
type CatalogService struct {
	repo     repositories.CoverRepository
	uploader Uploader
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CoverRepository, uploader Uploader) *CatalogService {
	return &CatalogService{
		repo:     repo,
		uploader: uploader,
	}
}

// ListCovers retrieves the covers matching the filter, newest first.
func (s *CatalogService) ListCovers(ctx context.Context, filter models.CoverFilter) ([]models.Cover, error) {
	return s.repo.List(ctx, filter)
}

// GetCoverByID retrieves a single cover by its ID.
func (s *CatalogService) GetCoverByID(ctx context.Context, id string) (*models.Cover, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateCover uploads the image, then stores a fully populated cover document.
func (s *CatalogService) CreateCover(ctx context.Context, create models.CoverCreate, image io.Reader) (*models.Cover, error) {
	imageURL, err := s.uploader.Upload(ctx, image)
	if err != nil {
		return nil, err
	}

	gender := create.GenderPreference
	if gender == "" {
		gender = models.DefaultGenderPreference
	}
	tags := create.Tags
	if tags == nil {
		tags = []string{}
	}
	categoryIDs := create.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}

	now := time.Now().UTC()
	cover := &models.Cover{
		ID:               uuid.New().String(),
		ModelName:        create.ModelName,
		CoverType:        create.CoverType,
		Color:            create.Color,
		Price:            create.Price,
		Stock:            create.Stock,
		ImageURL:         imageURL,
		GenderPreference: gender,
		Tags:             tags,
		CategoryIDs:      categoryIDs,
		IsAvailable:      create.IsAvailable,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, cover); err != nil {
		return nil, err
	}
	return cover, nil
}

// UpdateCover applies a partial update. A payload with no recognized fields is
// rejected before any store call.
func (s *CatalogService) UpdateCover(ctx context.Context, id string, update models.CoverUpdate) (*models.Cover, error) {
	if !update.HasFields() {
		return nil, models.ErrEmptyUpdate
	}
	return s.repo.Update(ctx, id, update)
}

// DeleteCover deletes a cover by its ID.
func (s *CatalogService) DeleteCover(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
