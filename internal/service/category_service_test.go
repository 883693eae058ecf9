package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"scent-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) CreateMany(ctx context.Context, categories []model.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateByID(ctx context.Context, id string, patch model.CategoryPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestCategoryService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo, logger)

		want := &model.Category{ID: "c1", CategoryName: "Floral"}
		mockRepo.On("GetByID", ctx, "c1").Return(want, nil)

		got, err := service.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "missing").Return(nil, nil)

		got, err := service.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrCategoryNotFound)
		assert.Nil(t, got)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, "c1").Return(nil, errors.New("database error"))

		_, err := service.GetByID(ctx, "c1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrCategoryNotFound)
	})
}

func TestCategoryService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo, zerolog.Nop())

	mockRepo.On("List", ctx).Return([]model.Category{}, nil)

	categories, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.NotNil(t, categories)
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		name      string
		input     model.CategoryInput
		wantStamp time.Time
	}{
		{
			name:  "Timestamps left for the store to default",
			input: model.CategoryInput{ID: "c1", CategoryName: "Floral"},
		},
		{
			name:      "Caller timestamps are kept",
			input:     model.CategoryInput{ID: "c1", CategoryName: "Floral", CreateAt: &stamp, UpdateAt: &stamp},
			wantStamp: stamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			service := NewCategoryService(mockRepo, zerolog.Nop())

			mockRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Category) bool {
				return c.ID == "c1" && c.CreateAt.Equal(tt.wantStamp) && c.UpdateAt.Equal(tt.wantStamp)
			})).Return(nil)

			created, err := service.Create(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, "Floral", created.CategoryName)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	name := "Woody"
	patch := model.CategoryPatch{CategoryName: &name}

	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo, zerolog.Nop())

	mockRepo.On("UpdateByID", ctx, "missing", patch).Return(false, nil)
	mockRepo.On("DeleteByID", ctx, "missing").Return(false, nil)
	mockRepo.On("DeleteByID", ctx, "broken").Return(false, errors.New("database error"))

	assert.NoError(t, service.UpdateByID(ctx, "missing", patch))
	assert.NoError(t, service.DeleteByID(ctx, "missing"))
	assert.Error(t, service.DeleteByID(ctx, "broken"))
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateMany(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCategoryRepository)
	service := NewCategoryService(mockRepo, zerolog.Nop())

	mockRepo.On("CreateMany", ctx, mock.Anything).Return(errors.New("database error"))

	n, err := service.CreateMany(ctx, []model.CategoryInput{{ID: "c1"}})
	require.Error(t, err)
	assert.Zero(t, n)
}
