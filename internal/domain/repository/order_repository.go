package repository

import (
	"context"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create persiste la cabecera y asigna order.ID y order.CreatedAt.
	Create(ctx context.Context, order *entity.Order) error
	// CreateItems persiste todas las líneas del pedido en un solo envío.
	CreateItems(ctx context.Context, items []*entity.OrderItem) error
	// ListHistoryByUser devuelve las filas planas pedido/línea/producto, más recientes primero.
	ListHistoryByUser(ctx context.Context, userID int64) ([]*entity.OrderHistoryRow, error)
}
