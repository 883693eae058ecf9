package model

import "github.com/google/uuid"

// Product represents a catalogue item. ID is the application key chosen by the
// caller; ObjectID is assigned by the store on insert.
type Product struct {
	ObjectID    uuid.UUID `json:"_id" db:"object_id"`
	ID          string    `json:"id" db:"id"`
	Category    string    `json:"category" db:"category"`
	Image       string    `json:"image" db:"image"`
	IsEnabled   float64   `json:"is_enabled" db:"is_enabled"`
	OriginPrice string    `json:"origin_price" db:"origin_price"`
	Price       string    `json:"price" db:"price"`
	Title       string    `json:"title" db:"title"`
	Unit        string    `json:"unit" db:"unit"`
}

// ProductInput is the request payload for creating a product.
type ProductInput struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsEnabled   float64 `json:"is_enabled"`
	OriginPrice string  `json:"origin_price"`
	Price       string  `json:"price"`
	Title       string  `json:"title"`
	Unit        string  `json:"unit"`
}

// ProductPatch carries the fields of an update request. Nil fields are left
// untouched.
type ProductPatch struct {
	ID          *string  `json:"id"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	IsEnabled   *float64 `json:"is_enabled"`
	OriginPrice *string  `json:"origin_price"`
	Price       *string  `json:"price"`
	Title       *string  `json:"title"`
	Unit        *string  `json:"unit"`
}
