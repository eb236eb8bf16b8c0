package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// CatalogExporter escribe el catálogo en un formato descargable (xlsx).
type CatalogExporter interface {
	WriteCatalog(w io.Writer, products []*entity.Product) error
}

// ProductUseCase casos de uso de lectura del catálogo.
type ProductUseCase struct {
	repo     repository.ProductRepository
	exporter CatalogExporter
}

// NewProductUseCase construye el caso de uso. exporter puede ser nil si no se expone la exportación.
func NewProductUseCase(repo repository.ProductRepository, exporter CatalogExporter) *ProductUseCase {
	return &ProductUseCase{repo: repo, exporter: exporter}
}

// List devuelve el catálogo filtrado. Si hay id se ignora la búsqueda.
func (uc *ProductUseCase) List(ctx context.Context, filter entity.ProductFilter) ([]dto.ProductResponse, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.ID != 0 {
		filter.Search = ""
	}
	products, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory devuelve los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ExportCatalog escribe todo el catálogo con el exportador configurado.
func (uc *ProductUseCase) ExportCatalog(ctx context.Context, w io.Writer) error {
	products, err := uc.repo.List(ctx, entity.ProductFilter{})
	if err != nil {
		return err
	}
	return uc.exporter.WriteCatalog(w, products)
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Category:    p.Category,
			ImagePath:   p.ImagePath,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}
