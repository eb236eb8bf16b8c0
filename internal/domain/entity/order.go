package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y valores fijos de pedidos y pagos.
const (
	OrderStatusPending   = "Pending"
	PaymentStatusPending = "Pending"

	PaymentMethodCashOnDelivery = "cash-on-delivery"
	AddressPending              = "Pending" // pedido desde carrito: la dirección se completa después
)

// Order cabecera de un pedido. Number es el identificador visible (ORD + 6 dígitos);
// ID es la clave numérica de la fila.
type Order struct {
	ID            int64
	Number        string
	UserID        int64
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Address       string
	Status        string
	CreatedAt     time.Time
}

// OrderItem línea de un pedido. Price es el precio unitario capturado al crear el pedido.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// Payment registro del pago de un pedido (solo se guarda el método, no hay pasarela).
type Payment struct {
	ID            int64
	OrderID       int64
	UserID        int64
	Amount        decimal.Decimal
	PaymentMethod string
	Address       string
	Status        string
	CreatedAt     time.Time
}

// OrderHistoryRow fila plana del LEFT JOIN pedidos / líneas / productos.
// Los campos de línea y producto son nil cuando el pedido no tiene líneas o el producto ya no existe.
type OrderHistoryRow struct {
	Order       Order
	ProductID   *int64
	Quantity    *int
	UnitPrice   *decimal.Decimal
	ProductName *string
	ImagePath   *string
	Description *string
}
