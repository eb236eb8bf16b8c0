// Package checkout implementa la creación de pedidos: desde el carrito (contra entrega)
// y el pago directo con recibo por correo.
package checkout

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/raash-api/internal/domain/order"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// Service orquesta las dos variantes de checkout.
type Service struct {
	txRunner  TxRunner
	cartRepo  repository.CartRepository // atado al pool: limpieza posterior al commit
	notifier  Notifier
	renderer  ReceiptRenderer // opcional
	shipping  decimal.Decimal
	newNumber order.NumberGenerator
	now       func() time.Time
	log       zerolog.Logger
}

// NewService construye el servicio. renderer puede ser nil: el recibo se envía sin PDF.
func NewService(
	txRunner TxRunner,
	cartRepo repository.CartRepository,
	notifier Notifier,
	renderer ReceiptRenderer,
	shipping decimal.Decimal,
	log zerolog.Logger,
) *Service {
	return &Service{
		txRunner:  txRunner,
		cartRepo:  cartRepo,
		notifier:  notifier,
		renderer:  renderer,
		shipping:  shipping,
		newNumber: order.NewNumberGenerator(nil),
		now:       time.Now,
		log:       log,
	}
}
