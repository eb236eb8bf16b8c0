package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/raash-api/internal/application/usecase"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/infrastructure/xlsx"
)

// ProductHandler maneja el catálogo (público) y su exportación (admin).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  id tiene prioridad sobre search; search busca en el nombre sin distinguir mayúsculas.
// @Tags         products
// @Produce      json
// @Param        id      query  int     false  "ID del producto"
// @Param        search  query  string  false  "Texto a buscar en el nombre"
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var filter entity.ProductFilter
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON([]struct{}{})
		}
		filter.ID = id
	}
	filter.Search = c.Query("search")
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Listar productos por categoría
// @Tags         products
// @Produce      json
// @Param        category  path  string  true  "Categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.UserContext(), c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar catálogo a Excel
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/products/export [get]
func (h *ProductHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, xlsx.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.xlsx"`)
	if err := h.uc.ExportCatalog(c.UserContext(), c.Response().BodyWriter()); err != nil {
		c.Response().ResetBody()
		return respondError(c, err)
	}
	return nil
}
