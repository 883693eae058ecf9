package repository

import (
	"context"
	"errors"
	"fmt"

	"scent-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `object_id, id, category, image, is_enabled, origin_price, price, title, unit`

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ObjectID, &p.ID, &p.Category, &p.Image, &p.IsEnabled,
		&p.OriginPrice, &p.Price, &p.Title, &p.Unit)
	return p, err
}

// List retrieves every product in insertion order.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY seq`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves the first product with the given application id.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 ORDER BY seq LIMIT 1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

const insertProduct = `
	INSERT INTO products (` + productColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func productArgs(p *model.Product) []any {
	if p.ObjectID == uuid.Nil {
		p.ObjectID = uuid.New()
	}
	return []any{p.ObjectID, p.ID, p.Category, p.Image, p.IsEnabled, p.OriginPrice, p.Price, p.Title, p.Unit}
}

// Create inserts a product verbatim, including the caller supplied id.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	if _, err := r.pool.Exec(ctx, insertProduct, productArgs(product)...); err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID).
		Str("object_id", product.ObjectID.String()).
		Msg("product created successfully")

	return nil
}

// CreateMany inserts products in a single batch.
func (r *productRepository) CreateMany(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i := range products {
		batch.Queue(insertProduct, productArgs(&products[i])...)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range products {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Str("product_id", products[i].ID).Msg("failed to insert product in batch")
			return fmt.Errorf("failed to insert product %q: %w", products[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(products)).Msg("products created successfully")

	return nil
}

// UpdateByID applies the non-nil patch fields to the first matching product.
func (r *productRepository) UpdateByID(ctx context.Context, id string, patch model.ProductPatch) (bool, error) {
	query := `
		UPDATE products SET
			id = COALESCE($2, id),
			category = COALESCE($3, category),
			image = COALESCE($4, image),
			is_enabled = COALESCE($5, is_enabled),
			origin_price = COALESCE($6, origin_price),
			price = COALESCE($7, price),
			title = COALESCE($8, title),
			unit = COALESCE($9, unit)
		WHERE object_id = (SELECT object_id FROM products WHERE id = $1 ORDER BY seq LIMIT 1)
	`

	tag, err := r.pool.Exec(ctx, query, id,
		patch.ID, patch.Category, patch.Image, patch.IsEnabled,
		patch.OriginPrice, patch.Price, patch.Title, patch.Unit)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// DeleteByID removes the first matching product.
func (r *productRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	query := `
		DELETE FROM products
		WHERE object_id = (SELECT object_id FROM products WHERE id = $1 ORDER BY seq LIMIT 1)
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
