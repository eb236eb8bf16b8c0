package repository

import (
	"context"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo.
type ProductRepository interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
}
