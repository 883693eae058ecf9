package service

import (
	"context"

	"scent-shop/internal/model"
)

// ProductService defines operations for product management. Update and delete
// of an id that matches nothing succeed without changing anything.
type ProductService interface {
	// List retrieves all products in store order.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its application id.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create stores a product exactly as supplied.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// CreateMany stores a batch of products and returns how many were written.
	CreateMany(ctx context.Context, inputs []model.ProductInput) (int, error)

	// UpdateByID overwrites the patched fields of the first product with id.
	UpdateByID(ctx context.Context, id string, patch model.ProductPatch) error

	// DeleteByID removes the first product with id.
	DeleteByID(ctx context.Context, id string) error
}

// CategoryService defines operations for category management, mirroring
// ProductService.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, input model.CategoryInput) (*model.Category, error)
	CreateMany(ctx context.Context, inputs []model.CategoryInput) (int, error)
	UpdateByID(ctx context.Context, id string, patch model.CategoryPatch) error
	DeleteByID(ctx context.Context, id string) error
}

// AuthService defines member registration, login and token verification.
type AuthService interface {
	// Register stores a new member. Usernames may repeat.
	Register(ctx context.Context, creds model.Credentials) (*model.Member, error)

	// Login checks the credentials of the first member with the username and
	// returns a signed token.
	Login(ctx context.Context, creds model.Credentials) (string, error)

	// VerifyToken validates a raw token and returns the member id it carries.
	VerifyToken(raw string) (string, error)
}
