package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/checkout"
	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/application/usecase"
)

// OrderHandler maneja pedidos y pagos del usuario autenticado.
type OrderHandler struct {
	orders   *usecase.OrderUseCase
	checkout *checkout.Service
}

// NewOrderHandler construye el handler.
func NewOrderHandler(orders *usecase.OrderUseCase, checkoutSvc *checkout.Service) *OrderHandler {
	return &OrderHandler{orders: orders, checkout: checkoutSvc}
}

// List godoc
// @Summary      Historial de pedidos
// @Description  Pedidos del usuario, más recientes primero, con sus productos.
// @Tags         orders
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.orders.ListOrders(c.UserContext(), GetSessionUser(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PlaceCartOrder godoc
// @Summary      Pedido desde el carrito
// @Description  Pedido contra entrega con los precios vigentes del catálogo; vacía el carrito.
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.PlaceOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceCartOrder(c *fiber.Ctx) error {
	out, err := h.checkout.PlaceCartOrder(c.UserContext(), *GetSessionUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Pagar pedido
// @Description  Registra pedido y pago con los importes enviados y manda el recibo por correo.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentRequest  true  "productos, totales, método y dirección"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *OrderHandler) Pay(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.checkout.ProcessPayment(c.UserContext(), *GetSessionUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
