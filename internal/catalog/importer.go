package catalog

import (
	"context"
	"fmt"

	"scent-shop/internal/service"

	"github.com/rs/zerolog"
)

// Result reports how many records an import wrote.
type Result struct {
	Categories int
	Products   int
}

// Importer writes snapshots through the resource services, so seeded records
// follow the same rules as records created over HTTP.
type Importer struct {
	products   service.ProductService
	categories service.CategoryService
	logger     zerolog.Logger
}

// NewImporter creates a new catalog importer.
func NewImporter(products service.ProductService, categories service.CategoryService, logger zerolog.Logger) *Importer {
	return &Importer{
		products:   products,
		categories: categories,
		logger:     logger.With().Str("component", "catalog-importer").Logger(),
	}
}

// Import writes categories first, then products. It is not transactional:
// categories stay written if the product batch fails.
func (i *Importer) Import(ctx context.Context, snap *Snapshot) (Result, error) {
	var res Result

	if len(snap.Categories) > 0 {
		n, err := i.categories.CreateMany(ctx, snap.Categories)
		if err != nil {
			return res, fmt.Errorf("failed to import categories from %s: %w", snap.Source, err)
		}
		res.Categories = n
	}

	if len(snap.Products) > 0 {
		n, err := i.products.CreateMany(ctx, snap.Products)
		if err != nil {
			return res, fmt.Errorf("failed to import products from %s: %w", snap.Source, err)
		}
		res.Products = n
	}

	i.logger.Info().
		Str("source", snap.Source).
		Int("categories", res.Categories).
		Int("products", res.Products).
		Msg("catalog imported")

	return res, nil
}
