// Package order contiene reglas de dominio puras del pedido: número visible y totales.
package order

import (
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// NumberPrefix prefijo del identificador visible del pedido.
const NumberPrefix = "ORD"

const (
	numberMin = 100000
	numberMax = 999999
)

// IntN fuente de enteros aleatorios en [0, n). *rand.Rand la implementa.
type IntN interface {
	IntN(n int) int
}

// NumberGenerator genera identificadores visibles de pedido.
type NumberGenerator func() string

// NewNumberGenerator devuelve un generador "ORD" + número uniforme en [100000, 999999].
// Con src nil usa la fuente global de math/rand/v2.
func NewNumberGenerator(src IntN) NumberGenerator {
	return func() string {
		var n int
		if src == nil {
			n = rand.IntN(numberMax - numberMin + 1)
		} else {
			n = src.IntN(numberMax - numberMin + 1)
		}
		return NumberPrefix + strconv.Itoa(numberMin+n)
	}
}

// Totals subtotal, envío y total de un pedido.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals suma precio * cantidad de cada línea y agrega el envío fijo.
// total = subtotal + envío.
func ComputeTotals(lines []entity.PricedCartLine, shipping decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
