package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImagePath   string          `json:"image_path"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
