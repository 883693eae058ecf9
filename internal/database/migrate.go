package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// schema creates the three collections. seq gives every table a stable
// insertion order; neither id nor username is unique.
const schema = `
	CREATE TABLE IF NOT EXISTS members (
		object_id UUID PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		username TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_members_username ON members(username, seq);

	CREATE TABLE IF NOT EXISTS products (
		object_id UUID PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		id TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		is_enabled DOUBLE PRECISION NOT NULL DEFAULT 0,
		origin_price TEXT NOT NULL DEFAULT '',
		price TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_products_id ON products(id, seq);
	ALTER TABLE products ALTER COLUMN is_enabled TYPE DOUBLE PRECISION;

	CREATE TABLE IF NOT EXISTS categories (
		object_id UUID PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		id TEXT NOT NULL DEFAULT '',
		category_name TEXT NOT NULL DEFAULT '',
		create_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		update_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_categories_id ON categories(id, seq);
`

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema is up to date")
	return nil
}
