package service

import (
	"context"
	"fmt"

	"scent-shop/internal/model"
	"scent-shop/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

func productFromInput(in model.ProductInput) model.Product {
	return model.Product{
		ID:          in.ID,
		Category:    in.Category,
		Image:       in.Image,
		IsEnabled:   in.IsEnabled,
		OriginPrice: in.OriginPrice,
		Price:       in.Price,
		Title:       in.Title,
		Unit:        in.Unit,
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by id.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a product exactly as supplied, including its id.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product := productFromInput(input)
	if err := s.productRepo.Create(ctx, &product); err != nil {
		s.logger.Error().Err(err).Str("product_id", input.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("object_id", product.ObjectID.String()).
		Msg("product added")

	return &product, nil
}

// CreateMany stores a batch of products.
func (s *productService) CreateMany(ctx context.Context, inputs []model.ProductInput) (int, error) {
	products := make([]model.Product, 0, len(inputs))
	for _, in := range inputs {
		products = append(products, productFromInput(in))
	}

	if err := s.productRepo.CreateMany(ctx, products); err != nil {
		s.logger.Error().Err(err).Int("count", len(products)).Msg("failed to create products")
		return 0, fmt.Errorf("failed to create products: %w", err)
	}

	s.logger.Info().Int("count", len(products)).Msg("products added")

	return len(products), nil
}

// UpdateByID overwrites the patched fields of the first product with id. An
// unknown id is not an error.
func (s *productService) UpdateByID(ctx context.Context, id string, patch model.ProductPatch) error {
	matched, err := s.productRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if !matched {
		s.logger.Debug().Str("product_id", id).Msg("update matched no product")
		return nil
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return nil
}

// DeleteByID removes the first product with id. An unknown id is not an error.
func (s *productService) DeleteByID(ctx context.Context, id string) error {
	matched, err := s.productRepo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !matched {
		s.logger.Debug().Str("product_id", id).Msg("delete matched no product")
		return nil
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}
