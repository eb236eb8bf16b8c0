package checkout

import (
	"context"

	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de carrito, pedidos y pagos atados a ella.
// Si fn devuelve error se hace rollback y nada de lo escrito persiste.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// Attachment adjunto de un correo.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Notification correo de texto plano con adjuntos opcionales.
type Notification struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Notifier envía correos (SMTP en producción).
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// ReceiptRenderer genera la copia PDF del recibo.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, r Receipt) ([]byte, error)
}
