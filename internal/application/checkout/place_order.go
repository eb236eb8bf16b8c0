package checkout

import (
	"context"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/order"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// PlaceCartOrder convierte el carrito del usuario en un pedido contra entrega.
// Precios, pedido, líneas, pago y vaciado del carrito ocurren en una sola transacción;
// las filas del carrito quedan bloqueadas, así un doble envío crea un único pedido.
func (s *Service) PlaceCartOrder(ctx context.Context, user entity.SessionUser) (*dto.PlaceOrderResponse, error) {
	var created *entity.Order

	err := s.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		lines, err := cartRepo.LockPricedLines(ctx, user.UserID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		totals := order.ComputeTotals(lines, s.shipping)
		o := &entity.Order{
			Number:        s.newNumber(),
			UserID:        user.UserID,
			Subtotal:      totals.Subtotal,
			Shipping:      totals.Shipping,
			Total:         totals.Total,
			PaymentMethod: entity.PaymentMethodCashOnDelivery,
			Address:       entity.AddressPending,
			Status:        entity.OrderStatusPending,
			CreatedAt:     s.now(),
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}

		items := make([]*entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, &entity.OrderItem{
				OrderID:   o.ID,
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				Price:     l.UnitPrice,
			})
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return err
		}

		if err := paymentRepo.Create(ctx, &entity.Payment{
			OrderID:       o.ID,
			UserID:        user.UserID,
			Amount:        o.Total,
			PaymentMethod: entity.PaymentMethodCashOnDelivery,
			Address:       entity.AddressPending,
			Status:        entity.PaymentStatusPending,
			CreatedAt:     o.CreatedAt,
		}); err != nil {
			return err
		}

		if err := cartRepo.ClearByUser(ctx, user.UserID); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("user_id", user.UserID).
		Int64("order_id", created.ID).
		Str("order_number", created.Number).
		Str("total", created.Total.StringFixed(2)).
		Msg("pedido desde carrito creado")
	return &dto.PlaceOrderResponse{Success: true, OrderID: created.ID}, nil
}
