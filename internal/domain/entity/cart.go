package entity

import "github.com/shopspring/decimal"

// Acciones válidas sobre una línea del carrito.
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
)

// CartLine representa (usuario, producto, cantidad). Quantity >= 1; al bajar de 1 la línea se elimina.
type CartLine struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// CartItem línea del carrito unida al producto para mostrar.
type CartItem struct {
	ProductID   int64
	Name        string
	Price       decimal.Decimal
	ImagePath   string
	Description string
	Quantity    int
}

// PricedCartLine línea del carrito con el precio vigente del producto, leída al confirmar el pedido.
type PricedCartLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// CartChange resultado de una mutación del carrito.
type CartChange string

const (
	CartLineCreated     CartChange = "created"
	CartLineIncremented CartChange = "incremented"
	CartLineDecremented CartChange = "decremented"
	CartLineRemoved     CartChange = "removed"
	CartLineUnchanged   CartChange = "unchanged" // disminuir una línea inexistente
)
