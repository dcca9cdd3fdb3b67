package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"covershop/internal/models"
)

// MockCoverRepository is an in-memory implementation of CoverRepository,
// used in tests and for running the API without a MongoDB instance.
type MockCoverRepository struct {
	covers map[string]models.Cover
	mu     sync.RWMutex
}

// NewMockCoverRepository creates a new instance of MockCoverRepository.
func NewMockCoverRepository() *MockCoverRepository {
	return &MockCoverRepository{
		covers: make(map[string]models.Cover),
	}
}

// List returns the covers matching the filter, newest first.
func (r *MockCoverRepository) List(ctx context.Context, filter models.CoverFilter) ([]models.Cover, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Cover{}
	for _, c := range r.covers {
		if coverMatches(filter, c) {
			matched = append(matched, c)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// GetByID returns a cover by its ID.
func (r *MockCoverRepository) GetByID(ctx context.Context, id string) (*models.Cover, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cover, ok := r.covers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &cover, nil
}

// Create adds a new cover.
func (r *MockCoverRepository) Create(ctx context.Context, cover *models.Cover) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.covers[cover.ID] = *cover
	return nil
}

// Update applies the present fields of the partial update and refreshes updatedAt.
func (r *MockCoverRepository) Update(ctx context.Context, id string, update models.CoverUpdate) (*models.Cover, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cover, ok := r.covers[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	if update.ModelName != nil {
		cover.ModelName = *update.ModelName
	}
	if update.CoverType != nil {
		cover.CoverType = *update.CoverType
	}
	if update.Color != nil {
		cover.Color = *update.Color
	}
	if update.Price != nil {
		cover.Price = *update.Price
	}
	if update.Stock != nil {
		cover.Stock = *update.Stock
	}
	if update.GenderPreference != nil {
		cover.GenderPreference = *update.GenderPreference
	}
	if update.Tags != nil {
		cover.Tags = *update.Tags
	}
	if update.CategoryIDs != nil {
		cover.CategoryIDs = *update.CategoryIDs
	}
	if update.IsAvailable != nil {
		cover.IsAvailable = *update.IsAvailable
	}
	cover.UpdatedAt = time.Now().UTC()

	r.covers[id] = cover
	return &cover, nil
}

// Delete removes a cover by its ID.
func (r *MockCoverRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.covers[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.covers, id)
	return nil
}

// coverMatches applies the same semantics as BuildCoverQuery against an
// in-memory cover.
func coverMatches(f models.CoverFilter, c models.Cover) bool {
	if f.Model != "" && !strings.Contains(strings.ToLower(c.ModelName), strings.ToLower(f.Model)) {
		return false
	}
	if len(f.CoverTypes) > 0 && !containsString(f.CoverTypes, c.CoverType) {
		return false
	}
	if len(f.Colors) > 0 && !containsString(f.Colors, c.Color) {
		return false
	}
	if f.MinPrice != nil && c.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && c.Price > *f.MaxPrice {
		return false
	}
	if gender := strings.TrimSpace(f.Gender); gender != "" && c.GenderPreference != gender {
		return false
	}
	if len(f.CategoryIDs) > 0 && !intersects(f.CategoryIDs, c.CategoryIDs) {
		return false
	}
	if !f.AdminMode && !c.IsAvailable {
		return false
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if containsString(b, v) {
			return true
		}
	}
	return false
}
