package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/raash-api/internal/domain"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// ListByUser devuelve el carrito del usuario unido al catálogo.
func (r *CartRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	query := `
		SELECT c.product_id, p.name, p.price, COALESCE(p.image_path, ''), COALESCE(p.description, ''), c.quantity
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.product_id`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()
	items := make([]*entity.CartItem, 0)
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Price, &it.ImagePath, &it.Description, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Increase inserta la línea con cantidad 1 o suma 1 a la existente, en una sola sentencia.
func (r *CartRepo) Increase(ctx context.Context, userID, productID int64) (entity.CartChange, error) {
	query := `
		INSERT INTO cart (user_id, product_id, quantity) VALUES ($1, $2, 1)
		ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart.quantity + 1
		RETURNING quantity`
	var qty int
	if err := r.q.QueryRow(ctx, query, userID, productID).Scan(&qty); err != nil {
		if isForeignKeyViolation(err) {
			return entity.CartLineUnchanged, domain.ErrNotFound
		}
		return entity.CartLineUnchanged, fmt.Errorf("increase cart line: %w", err)
	}
	if qty == 1 {
		return entity.CartLineCreated, nil
	}
	return entity.CartLineIncremented, nil
}

// decreaseCartLineSQL bloquea la línea y, en la misma sentencia, resta 1 o la elimina según la cantidad
// bloqueada. Un incremento concurrente se serializa con el FOR UPDATE.
const decreaseCartLineSQL = `
	WITH locked AS (
		SELECT user_id, product_id, quantity FROM cart
		WHERE user_id = $1 AND product_id = $2
		FOR UPDATE
	), decremented AS (
		UPDATE cart c SET quantity = c.quantity - 1
		FROM locked l
		WHERE c.user_id = l.user_id AND c.product_id = l.product_id AND l.quantity > 1
		RETURNING 'decremented'::text AS change
	), removed AS (
		DELETE FROM cart c
		USING locked l
		WHERE c.user_id = l.user_id AND c.product_id = l.product_id AND l.quantity <= 1
		RETURNING 'removed'::text AS change
	)
	SELECT change FROM decremented
	UNION ALL
	SELECT change FROM removed`

// Decrease resta 1 si la cantidad es mayor a 1; si es 1 elimina la línea. Una sola sentencia.
func (r *CartRepo) Decrease(ctx context.Context, userID, productID int64) (entity.CartChange, error) {
	var change string
	err := r.q.QueryRow(ctx, decreaseCartLineSQL, userID, productID).Scan(&change)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.CartLineUnchanged, nil
	}
	if err != nil {
		return entity.CartLineUnchanged, fmt.Errorf("decrease cart line: %w", err)
	}
	return entity.CartChange(change), nil
}

// LockPricedLines lee las líneas del carrito con el precio actual del producto en una sola consulta
// y bloquea las filas del carrito (FOR UPDATE) hasta el fin de la transacción.
func (r *CartRepo) LockPricedLines(ctx context.Context, userID int64) ([]entity.PricedCartLine, error) {
	query := `
		SELECT c.product_id, c.quantity, p.price
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.product_id
		FOR UPDATE OF c`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("lock cart lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.PricedCartLine
	for rows.Next() {
		var l entity.PricedCartLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ClearByUser elimina el carrito completo del usuario.
func (r *CartRepo) ClearByUser(ctx context.Context, userID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM cart WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
