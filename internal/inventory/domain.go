package inventory

import (
	"errors"
	"time"

	"github.com/wheels-hub/wheels-hub/internal/reportkit"
)

// Item is a stocked part. Stock status labels are derived at read time from
// quantity and reorder level; they are never stored.
type Item struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	ReorderLevel  int       `json:"reorder_level"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StockBand classifies the item by quantity/reorder ratio.
func (i Item) StockBand() reportkit.Band {
	return reportkit.ClassifyRatio(float64(i.StockQuantity), float64(i.ReorderLevel))
}

// StockLevel is the coarser Low/Medium/High label shown on item cards.
func (i Item) StockLevel() string {
	switch {
	case i.ReorderLevel > 0 && i.StockQuantity <= i.ReorderLevel:
		return "Low"
	case i.ReorderLevel > 0 && i.StockQuantity <= 3*i.ReorderLevel:
		return "Medium"
	default:
		return "High"
	}
}

// CreateInput describes a new item.
type CreateInput struct {
	Name          string
	Category      string
	Price         float64
	StockQuantity int
	ReorderLevel  int
	Description   string
	ImageURL      string
	ActorID       int64
}

// ErrInvalidPrice indicates a negative price.
var ErrInvalidPrice = errors.New("inventory: price must be >= 0")

// ErrInvalidQuantity indicates a negative stock quantity.
var ErrInvalidQuantity = errors.New("inventory: stock quantity must be >= 0")

// ErrNameRequired indicates a blank item name.
var ErrNameRequired = errors.New("inventory: name required")
