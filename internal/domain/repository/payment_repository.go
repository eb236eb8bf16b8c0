package repository

import (
	"context"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
}
