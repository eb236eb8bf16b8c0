package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/application/usecase"
)

// CartHandler maneja el carrito del usuario autenticado.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {array}   dto.CartItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSessionUser(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Sumar o restar una unidad
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCartRequest  true  "product_id, action (increase|decrease)"
// @Success      200  {object}  dto.UpdateCartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cart/update [post]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSessionUser(c).UserID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
