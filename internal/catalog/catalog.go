// Package catalog loads gzipped JSON-lines catalog files and seeds them
// into the product and category stores.
//
// Each non-blank line is one JSON object with a "kind" of "product" or
// "category"; the remaining keys are the resource fields, e.g.
//
//	{"kind":"category","id":"c1","category_name":"Floral"}
//	{"kind":"product","id":"p1","title":"Rose","price":"10","is_enabled":1}
package catalog

import (
	"context"
	"errors"

	"scent-shop/internal/model"
)

// Record kinds.
const (
	KindProduct  = "product"
	KindCategory = "category"
)

// ErrUnknownKind is returned for a line whose kind is neither product nor
// category.
var ErrUnknownKind = errors.New("unknown record kind")

// Snapshot is the parsed content of one catalog file, in file order.
type Snapshot struct {
	Source     string
	Products   []model.ProductInput
	Categories []model.CategoryInput
}

// Size returns the number of records in the snapshot.
func (s *Snapshot) Size() int {
	return len(s.Products) + len(s.Categories)
}

// Loader defines the interface for loading catalog files.
type Loader interface {
	// Load reads a gzipped catalog file and returns its records.
	Load(ctx context.Context, path string) (*Snapshot, error)
}
