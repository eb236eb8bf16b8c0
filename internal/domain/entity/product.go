package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una entrada del catálogo. Es de solo lectura para la API.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    string
	ImagePath   string
	Description string
	CreatedAt   time.Time
}

// ProductFilter filtro de listado: ID tiene prioridad sobre Search.
type ProductFilter struct {
	ID     int64  // 0 = sin filtro por id
	Search string // subcadena del nombre, sin distinguir mayúsculas
}
