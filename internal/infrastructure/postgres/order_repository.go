package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (order_id, user_id, subtotal, shipping, total, payment_method, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		order.Number, order.UserID, order.Subtotal, order.Shipping, order.Total,
		order.PaymentMethod, order.Address, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas en un único batch (un viaje de red).
func (r *OrderRepo) CreateItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	const query = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(query, it.OrderID, it.ProductID, it.Quantity, it.Price)
	}
	br := r.q.SendBatch(ctx, batch)
	for _, it := range items {
		if err := br.QueryRow().Scan(&it.ID); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert order item (product %d): %w", it.ProductID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert order items: %w", err)
	}
	return nil
}

// ListHistoryByUser devuelve pedidos con sus líneas (LEFT JOIN), más recientes primero.
func (r *OrderRepo) ListHistoryByUser(ctx context.Context, userID int64) ([]*entity.OrderHistoryRow, error) {
	query := `
		SELECT o.id, o.order_id, o.user_id, o.subtotal, o.shipping, o.total,
		       o.payment_method, o.address, o.status, o.created_at,
		       oi.product_id, oi.quantity, oi.price,
		       p.name, p.image_path, p.description
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC, o.id DESC, oi.id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.OrderHistoryRow, 0)
	for rows.Next() {
		var h entity.OrderHistoryRow
		var price decimal.NullDecimal
		o := &h.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.UserID, &o.Subtotal, &o.Shipping, &o.Total,
			&o.PaymentMethod, &o.Address, &o.Status, &o.CreatedAt,
			&h.ProductID, &h.Quantity, &price,
			&h.ProductName, &h.ImagePath, &h.Description,
		); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		if price.Valid {
			p := price.Decimal
			h.UnitPrice = &p
		}
		list = append(list, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return list, nil
}
