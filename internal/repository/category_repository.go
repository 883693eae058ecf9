package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scent-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const categoryColumns = `object_id, id, category_name, create_at, update_at`

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
	now    func() time.Time
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
		now:    time.Now,
	}
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ObjectID, &c.ID, &c.CategoryName, &c.CreateAt, &c.UpdateAt)
	return c, err
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 ORDER BY seq LIMIT 1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

const insertCategory = `
	INSERT INTO categories (` + categoryColumns + `)
	VALUES ($1, $2, $3, $4, $5)
`

// categoryArgs fills in the storage-side defaults: a fresh ObjectID and the
// insert time for unset timestamps.
func (r *categoryRepository) categoryArgs(c *model.Category) []any {
	if c.ObjectID == uuid.Nil {
		c.ObjectID = uuid.New()
	}
	now := r.now().UTC()
	if c.CreateAt.IsZero() {
		c.CreateAt = now
	}
	if c.UpdateAt.IsZero() {
		c.UpdateAt = now
	}
	return []any{c.ObjectID, c.ID, c.CategoryName, c.CreateAt, c.UpdateAt}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if _, err := r.pool.Exec(ctx, insertCategory, r.categoryArgs(category)...); err != nil {
		r.logger.Error().Err(err).Str("category_id", category.ID).Msg("failed to create category")
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().
		Str("category_id", category.ID).
		Str("object_id", category.ObjectID.String()).
		Msg("category created successfully")

	return nil
}

func (r *categoryRepository) CreateMany(ctx context.Context, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range categories {
		batch.Queue(insertCategory, r.categoryArgs(&categories[i])...)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range categories {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("category_id", categories[i].ID).Msg("failed to insert category in batch")
			return fmt.Errorf("failed to insert category %q: %w", categories[i].ID, err)
		}
	}

	return nil
}

// UpdateByID leaves update_at alone unless the patch sets it.
func (r *categoryRepository) UpdateByID(ctx context.Context, id string, patch model.CategoryPatch) (bool, error) {
	query := `
		UPDATE categories SET
			id = COALESCE($2, id),
			category_name = COALESCE($3, category_name),
			create_at = COALESCE($4, create_at),
			update_at = COALESCE($5, update_at)
		WHERE object_id = (SELECT object_id FROM categories WHERE id = $1 ORDER BY seq LIMIT 1)
	`

	tag, err := r.pool.Exec(ctx, query, id, patch.ID, patch.CategoryName, patch.CreateAt, patch.UpdateAt)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *categoryRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	query := `
		DELETE FROM categories
		WHERE object_id = (SELECT object_id FROM categories WHERE id = $1 ORDER BY seq LIMIT 1)
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
