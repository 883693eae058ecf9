package repository

import (
	"context"

	"scent-shop/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Lookups by id resolve to the earliest inserted row carrying that id.
type ProductRepository interface {
	// List retrieves every product in insertion order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves the first product with the given application id.
	// Returns nil, nil when there is no match.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a product, assigning its ObjectID when unset.
	Create(ctx context.Context, product *model.Product) error

	// CreateMany inserts products in a single batch.
	CreateMany(ctx context.Context, products []model.Product) error

	// UpdateByID applies the non-nil patch fields to the first match and
	// reports whether a row was matched.
	UpdateByID(ctx context.Context, id string, patch model.ProductPatch) (bool, error)

	// DeleteByID removes the first match and reports whether a row was matched.
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	CreateMany(ctx context.Context, categories []model.Category) error
	UpdateByID(ctx context.Context, id string, patch model.CategoryPatch) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// MemberRepository defines the interface for member credential storage.
type MemberRepository interface {
	// Create inserts a member. Usernames are not required to be unique.
	Create(ctx context.Context, member *model.Member) error

	// GetByUsername retrieves the earliest registered member with the given
	// username. Returns nil, nil when there is no match.
	GetByUsername(ctx context.Context, username string) (*model.Member, error)
}
