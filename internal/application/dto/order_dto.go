package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderResponse salida del pedido desde carrito.
type PlaceOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

// OrderResponse pedido del historial con sus productos anidados.
type OrderResponse struct {
	ID            int64                  `json:"id"`
	OrderID       string                 `json:"order_id"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Shipping      decimal.Decimal        `json:"shipping"`
	Total         decimal.Decimal        `json:"total"`
	PaymentMethod string                 `json:"payment_method"`
	Address       string                 `json:"address"`
	Status        string                 `json:"status"`
	CreatedAt     time.Time              `json:"created_at"`
	Products      []OrderProductResponse `json:"products"`
}

// OrderProductResponse línea de un pedido del historial. UnitPrice es el precio capturado en el pedido.
type OrderProductResponse struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImagePath   string          `json:"image_path"`
	Description string          `json:"description"`
}
