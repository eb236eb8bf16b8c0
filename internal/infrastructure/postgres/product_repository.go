package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, category, COALESCE(image_path, ''), COALESCE(description, ''), created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List lista productos: por id si filter.ID > 0, si no por subcadena del nombre, si no todos.
func (r *ProductRepo) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var args []any
	switch {
	case filter.ID > 0:
		query += ` WHERE id = $1`
		args = append(args, filter.ID)
	case filter.Search != "":
		query += ` WHERE name ILIKE $1`
		args = append(args, likePattern(filter.Search))
	}
	query += ` ORDER BY id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return scanProducts(rows)
}

// ListByCategory lista los productos de una categoría.
func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImagePath, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return list, nil
}
