package service

import (
	"context"
	"errors"
	"testing"

	"scent-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	if args.Error(0) == nil {
		product.ObjectID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockProductRepository) CreateMany(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateByID(ctx context.Context, id string, patch model.ProductPatch) (bool, error) {
	args := m.Called(ctx, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestProductService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: "p1", Title: "Rose", Price: "10"},
		{ID: "p2", Title: "Lily", Price: "12"},
	}

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expectError bool
	}{
		{name: "Success", mockReturn: testProducts},
		{name: "Empty collection", mockReturn: []model.Product{}},
		{name: "Repository error", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("List", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := service.List(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	product := &model.Product{ID: "p1", Title: "Rose"}

	tests := []struct {
		name          string
		id            string
		mockReturn    *model.Product
		mockError     error
		expectedError error
		expectError   bool
	}{
		{name: "Found", id: "p1", mockReturn: product},
		{name: "Not found", id: "missing", expectedError: model.ErrProductNotFound, expectError: true},
		{name: "Repository error", id: "p1", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("GetByID", ctx, tt.id).Return(tt.mockReturn, tt.mockError)

			got, err := service.GetByID(ctx, tt.id)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, got)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	input := model.ProductInput{
		ID: "p1", Category: "floral", Image: "rose.png", IsEnabled: 1,
		OriginPrice: "12", Price: "10", Title: "Rose", Unit: "bottle",
	}

	t.Run("Stores input verbatim", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.ID == "p1" && p.Title == "Rose" && p.IsEnabled == 1.0 && p.Unit == "bottle"
		})).Return(nil)

		created, err := service.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "p1", created.ID)
		assert.Equal(t, "12", created.OriginPrice)
		assert.NotEqual(t, uuid.Nil, created.ObjectID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := NewProductService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("database error"))

		created, err := service.Create(ctx, input)
		require.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestProductService_CreateMany(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockProductRepository)
	service := NewProductService(mockRepo, logger)

	mockRepo.On("CreateMany", ctx, mock.MatchedBy(func(ps []model.Product) bool {
		return len(ps) == 2 && ps[0].ID == "p1" && ps[1].ID == "p2"
	})).Return(nil)

	n, err := service.CreateMany(ctx, []model.ProductInput{{ID: "p1"}, {ID: "p2"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	title := "Lily"
	patch := model.ProductPatch{Title: &title}

	tests := []struct {
		name        string
		matched     bool
		mockError   error
		expectError bool
	}{
		{name: "Matched", matched: true},
		// An unknown id is reported as success.
		{name: "No match is still success", matched: false},
		{name: "Repository error", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("UpdateByID", ctx, "p1", patch).Return(tt.matched, tt.mockError)

			err := service.UpdateByID(ctx, "p1", patch)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_DeleteByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		matched     bool
		mockError   error
		expectError bool
	}{
		{name: "Matched", matched: true},
		{name: "No match is still success", matched: false},
		{name: "Repository error", mockError: errors.New("database error"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			service := NewProductService(mockRepo, logger)

			mockRepo.On("DeleteByID", ctx, "p1").Return(tt.matched, tt.mockError)

			err := service.DeleteByID(ctx, "p1")

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
