package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"covershop/internal/models"
	"covershop/internal/services"
)

// MockCoverRepository is a mock implementation of repositories.CoverRepository.
type MockCoverRepository struct {
	mock.Mock
}

func (m *MockCoverRepository) List(ctx context.Context, filter models.CoverFilter) ([]models.Cover, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Cover), args.Error(1)
}

func (m *MockCoverRepository) GetByID(ctx context.Context, id string) (*models.Cover, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cover), args.Error(1)
}

func (m *MockCoverRepository) Create(ctx context.Context, cover *models.Cover) error {
	args := m.Called(ctx, cover)
	return args.Error(0)
}

func (m *MockCoverRepository) Update(ctx context.Context, id string, update models.CoverUpdate) (*models.Cover, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cover), args.Error(1)
}

func (m *MockCoverRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUploader is a mock implementation of services.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func TestCatalogService_ListCovers(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	service := services.NewCatalogService(mockRepo, nil)

	filter := models.CoverFilter{Model: "iPhone"}
	expected := []models.Cover{{ID: "1", ModelName: "iPhone 13"}}

	mockRepo.On("List", mock.Anything, filter).Return(expected, nil).Once()

	covers, err := service.ListCovers(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, expected, covers)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateCover(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	mockUploader := new(MockUploader)
	service := services.NewCatalogService(mockRepo, mockUploader)

	image := strings.NewReader("fake image bytes")
	mockUploader.On("Upload", mock.Anything, image).
		Return("https://cdn.example.com/mobile_covers/abc.jpg", nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Cover")).Return(nil).Once()

	cover, err := service.CreateCover(context.Background(), models.CoverCreate{
		ModelName:   "iPhone 13",
		CoverType:   "Silicone",
		Color:       "Black",
		Price:       499.99,
		Stock:       50,
		IsAvailable: true,
	}, image)

	assert.NoError(t, err)
	assert.NotEmpty(t, cover.ID)
	assert.Equal(t, "https://cdn.example.com/mobile_covers/abc.jpg", cover.ImageURL)
	// Omitted optional fields get their documented defaults.
	assert.Equal(t, "Unisex", cover.GenderPreference)
	assert.Equal(t, []string{}, cover.Tags)
	assert.Equal(t, []string{}, cover.CategoryIDs)
	assert.False(t, cover.CreatedAt.IsZero())
	assert.Equal(t, cover.CreatedAt, cover.UpdatedAt)
	mockUploader.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_CreateCover_UploadFailureAbortsCreate(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	mockUploader := new(MockUploader)
	service := services.NewCatalogService(mockRepo, mockUploader)

	image := strings.NewReader("fake image bytes")
	mockUploader.On("Upload", mock.Anything, image).Return("", models.ErrUploadFailed).Once()

	cover, err := service.CreateCover(context.Background(), models.CoverCreate{
		ModelName: "iPhone 13",
		CoverType: "Silicone",
		Color:     "Black",
		Price:     499.99,
	}, image)

	assert.Nil(t, cover)
	assert.ErrorIs(t, err, models.ErrUploadFailed)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateCover_EmptyPayloadRejectedBeforeStore(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	service := services.NewCatalogService(mockRepo, nil)

	cover, err := service.UpdateCover(context.Background(), "cover-1", models.CoverUpdate{})

	assert.Nil(t, cover)
	assert.ErrorIs(t, err, models.ErrEmptyUpdate)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateCover_ZeroStockIsApplied(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	service := services.NewCatalogService(mockRepo, nil)

	stock := 0
	update := models.CoverUpdate{Stock: &stock}
	updated := &models.Cover{ID: "cover-1", Stock: 0}

	mockRepo.On("Update", mock.Anything, "cover-1", update).Return(updated, nil).Once()

	cover, err := service.UpdateCover(context.Background(), "cover-1", update)

	assert.NoError(t, err)
	assert.Equal(t, 0, cover.Stock)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateCover_NotFound(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	service := services.NewCatalogService(mockRepo, nil)

	name := "Galaxy S24"
	update := models.CoverUpdate{ModelName: &name}

	mockRepo.On("Update", mock.Anything, "missing", update).Return(nil, models.ErrNotFound).Once()

	cover, err := service.UpdateCover(context.Background(), "missing", update)

	assert.Nil(t, cover)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteCover(t *testing.T) {
	mockRepo := new(MockCoverRepository)
	service := services.NewCatalogService(mockRepo, nil)

	mockRepo.On("Delete", mock.Anything, "cover-1").Return(nil).Once()
	assert.NoError(t, service.DeleteCover(context.Background(), "cover-1"))

	mockRepo.On("Delete", mock.Anything, "missing").Return(models.ErrNotFound).Once()
	assert.ErrorIs(t, service.DeleteCover(context.Background(), "missing"), models.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
