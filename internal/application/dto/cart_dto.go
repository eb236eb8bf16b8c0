package dto

import "github.com/shopspring/decimal"

// CartItemResponse línea del carrito con datos del producto.
type CartItemResponse struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"image_path"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

// UpdateCartRequest entrada para sumar o restar una unidad de un producto.
type UpdateCartRequest struct {
	ProductID ProductRef `json:"product_id" validate:"required" swaggertype:"integer"`
	Action    string     `json:"action" validate:"required,oneof=increase decrease"`
}

// UpdateCartResponse resultado de la mutación. Success es false cuando no hubo nada que cambiar.
type UpdateCartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
