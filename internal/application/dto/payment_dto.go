package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentProductRequest producto enviado por el cliente. El id puede venir como product_id o como id.
type PaymentProductRequest struct {
	ProductID ProductRef      `json:"product_id" swaggertype:"integer"`
	ID        ProductRef      `json:"id" swaggertype:"integer"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// EffectiveProductID devuelve product_id y, si no viene, id.
func (p PaymentProductRequest) EffectiveProductID() int64 {
	if p.ProductID != 0 {
		return p.ProductID.Int64()
	}
	return p.ID.Int64()
}

// PaymentRequest pago directo: líneas y totales calculados por el cliente.
// SingleProduct ("productId") marca una compra directa de un producto: en ese caso el carrito no se vacía.
// Se guarda crudo porque el frontend lo envía como número o como string.
type PaymentRequest struct {
	Products      []PaymentProductRequest `json:"products"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	Shipping      decimal.Decimal         `json:"shipping"`
	Total         decimal.Decimal         `json:"total"`
	PaymentMethod string                  `json:"payment_method"`
	Address       string                  `json:"address"`
	SingleProduct json.RawMessage         `json:"productId,omitempty" swaggertype:"string"`
}

// FromCart indica si el pago proviene del carrito: productId ausente, null, false, 0 o "".
func (r PaymentRequest) FromCart() bool {
	return !jsonTruthy(r.SingleProduct)
}

// PaymentResponse salida del pago.
type PaymentResponse struct {
	Success     bool   `json:"success"`
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"order_number"`
	Message     string `json:"message"`
}
