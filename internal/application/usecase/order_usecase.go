package usecase

import (
	"context"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// Valores mostrados cuando el producto de una línea ya no existe en el catálogo.
const (
	DefaultImagePath   = "images/default.jpg"
	DefaultDescription = "No description available"
)

// OrderUseCase historial de pedidos.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListOrders agrupa las filas del JOIN en pedidos con sus productos, respetando el orden de la consulta.
func (uc *OrderUseCase) ListOrders(ctx context.Context, userID int64) ([]dto.OrderResponse, error) {
	rows, err := uc.repo.ListHistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupOrderHistory(rows), nil
}

// GroupOrderHistory convierte filas planas en pedidos anidados. Un pedido sin líneas queda con products vacío.
func GroupOrderHistory(rows []*entity.OrderHistoryRow) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0)
	index := make(map[int64]int)
	for _, r := range rows {
		i, ok := index[r.Order.ID]
		if !ok {
			i = len(out)
			index[r.Order.ID] = i
			out = append(out, dto.OrderResponse{
				ID:            r.Order.ID,
				OrderID:       r.Order.Number,
				Subtotal:      r.Order.Subtotal,
				Shipping:      r.Order.Shipping,
				Total:         r.Order.Total,
				PaymentMethod: r.Order.PaymentMethod,
				Address:       r.Order.Address,
				Status:        r.Order.Status,
				CreatedAt:     r.Order.CreatedAt,
				Products:      []dto.OrderProductResponse{},
			})
		}
		if r.ProductID == nil {
			continue
		}
		p := dto.OrderProductResponse{
			ProductID:   *r.ProductID,
			Name:        deref(r.ProductName, ""),
			ImagePath:   deref(r.ImagePath, DefaultImagePath),
			Description: deref(r.Description, DefaultDescription),
		}
		if r.Quantity != nil {
			p.Quantity = *r.Quantity
		}
		if r.UnitPrice != nil {
			p.UnitPrice = *r.UnitPrice
		}
		out[i].Products = append(out[i].Products, p)
	}
	return out
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
