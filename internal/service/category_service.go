package service

import (
	"context"
	"fmt"

	"scent-shop/internal/model"
	"scent-shop/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// categoryFromInput leaves unset timestamps zero; the repository stamps them
// with the insert time.
func categoryFromInput(in model.CategoryInput) model.Category {
	c := model.Category{ID: in.ID, CategoryName: in.CategoryName}
	if in.CreateAt != nil {
		c.CreateAt = *in.CreateAt
	}
	if in.UpdateAt != nil {
		c.UpdateAt = *in.UpdateAt
	}
	return c
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")

	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to get category by ID")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Str("category_id", id).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

func (s *categoryService) Create(ctx context.Context, input model.CategoryInput) (*model.Category, error) {
	category := categoryFromInput(input)
	if err := s.categoryRepo.Create(ctx, &category); err != nil {
		s.logger.Error().Err(err).Str("category_id", input.ID).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().
		Str("category_id", category.ID).
		Str("object_id", category.ObjectID.String()).
		Msg("category added")

	return &category, nil
}

func (s *categoryService) CreateMany(ctx context.Context, inputs []model.CategoryInput) (int, error) {
	categories := make([]model.Category, 0, len(inputs))
	for _, in := range inputs {
		categories = append(categories, categoryFromInput(in))
	}

	if err := s.categoryRepo.CreateMany(ctx, categories); err != nil {
		s.logger.Error().Err(err).Int("count", len(categories)).Msg("failed to create categories")
		return 0, fmt.Errorf("failed to create categories: %w", err)
	}

	s.logger.Info().Int("count", len(categories)).Msg("categories added")

	return len(categories), nil
}

func (s *categoryService) UpdateByID(ctx context.Context, id string, patch model.CategoryPatch) error {
	matched, err := s.categoryRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if !matched {
		s.logger.Debug().Str("category_id", id).Msg("update matched no category")
		return nil
	}

	s.logger.Info().Str("category_id", id).Msg("category updated")

	return nil
}

func (s *categoryService) DeleteByID(ctx context.Context, id string) error {
	matched, err := s.categoryRepo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if !matched {
		s.logger.Debug().Str("category_id", id).Msg("delete matched no category")
		return nil
	}

	s.logger.Info().Str("category_id", id).Msg("category deleted")

	return nil
}
