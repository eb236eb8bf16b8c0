package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// PaymentSuccessMessage mensaje de la respuesta de pago.
const PaymentSuccessMessage = "Payment successful, receipt sent to your email"

// ValidatePayment revisa solo la estructura del pedido: los importes se toman tal cual los envía el cliente.
func ValidatePayment(in dto.PaymentRequest) error {
	if len(in.Products) == 0 {
		return fmt.Errorf("%w: products es requerido", domain.ErrInvalidInput)
	}
	for i, p := range in.Products {
		if p.EffectiveProductID() <= 0 {
			return fmt.Errorf("%w: products[%d] sin id", domain.ErrInvalidInput, i)
		}
		if p.Quantity < 1 {
			return fmt.Errorf("%w: products[%d] cantidad inválida", domain.ErrInvalidInput, i)
		}
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return fmt.Errorf("%w: payment_method es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Address) == "" {
		return fmt.Errorf("%w: address es requerido", domain.ErrInvalidInput)
	}
	return nil
}

// ProcessPayment registra pedido, líneas y pago en una transacción. Tras el commit envía el recibo
// y, si el pago viene del carrito, lo vacía. Esos dos pasos solo se registran en el log si fallan.
func (s *Service) ProcessPayment(ctx context.Context, user entity.SessionUser, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if err := ValidatePayment(in); err != nil {
		return nil, err
	}

	o := &entity.Order{
		Number:        s.newNumber(),
		UserID:        user.UserID,
		Subtotal:      in.Subtotal,
		Shipping:      in.Shipping,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Address:       in.Address,
		Status:        entity.OrderStatusPending,
		CreatedAt:     s.now(),
	}

	err := s.txRunner.RunCheckout(ctx, func(
		_ repository.CartRepository,
		orderRepo repository.OrderRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}
		items := make([]*entity.OrderItem, 0, len(in.Products))
		for _, p := range in.Products {
			items = append(items, &entity.OrderItem{
				OrderID:   o.ID,
				ProductID: p.EffectiveProductID(),
				Quantity:  p.Quantity,
				Price:     p.Price,
			})
		}
		if err := orderRepo.CreateItems(ctx, items); err != nil {
			return err
		}
		return paymentRepo.Create(ctx, &entity.Payment{
			OrderID:       o.ID,
			UserID:        user.UserID,
			Amount:        in.Total,
			PaymentMethod: in.PaymentMethod,
			Address:       in.Address,
			Status:        entity.PaymentStatusPending,
			CreatedAt:     o.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	log := s.log.With().Int64("user_id", user.UserID).Int64("order_id", o.ID).Str("order_number", o.Number).Logger()
	log.Info().Str("total", o.Total.StringFixed(2)).Msg("pago registrado")

	s.sendReceipt(ctx, user, o, in, log)

	if in.FromCart() {
		if err := s.cartRepo.ClearByUser(ctx, user.UserID); err != nil {
			log.Error().Err(err).Msg("vaciar carrito tras el pago")
		}
	}

	return &dto.PaymentResponse{
		Success:     true,
		OrderID:     o.ID,
		OrderNumber: o.Number,
		Message:     PaymentSuccessMessage,
	}, nil
}
