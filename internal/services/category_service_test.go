package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"covershop/internal/models"
	"covershop/internal/services"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	mockRepo.On("GetByName", mock.Anything, "Silicone Cases").Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, err := service.CreateCategory(context.Background(), models.CategoryCreate{
		Name:        "Silicone Cases",
		Description: "Soft and flexible silicone cases",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Silicone Cases", category.Name)
	assert.False(t, category.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	existing := &models.Category{ID: "cat-1", Name: "Silicone Cases"}
	mockRepo.On("GetByName", mock.Anything, "Silicone Cases").Return(existing, nil).Once()

	category, err := service.CreateCategory(context.Background(), models.CategoryCreate{Name: "Silicone Cases"})

	assert.Nil(t, category)
	assert.ErrorIs(t, err, models.ErrDuplicateName)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_CreateCategory_NameIsCaseSensitive(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	// "silicone cases" does not collide with "Silicone Cases".
	mockRepo.On("GetByName", mock.Anything, "silicone cases").Return(nil, models.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, err := service.CreateCategory(context.Background(), models.CategoryCreate{Name: "silicone cases"})

	assert.NoError(t, err)
	assert.Equal(t, "silicone cases", category.Name)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	mockRepo.On("Delete", mock.Anything, "cat-1").Return(nil).Once()
	assert.NoError(t, service.DeleteCategory(context.Background(), "cat-1"))

	mockRepo.On("Delete", mock.Anything, "missing").Return(models.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteCategory(context.Background(), "missing"), models.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
