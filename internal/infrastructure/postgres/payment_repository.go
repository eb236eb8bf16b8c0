package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el registro de pago.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, user_id, amount, payment_method, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		payment.OrderID, payment.UserID, payment.Amount, payment.PaymentMethod, payment.Address, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}
