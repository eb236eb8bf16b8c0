package repository

import (
	"context"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia del carrito por usuario.
// Increase y Decrease son atómicas: no leen y luego escriben.
type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error)
	Increase(ctx context.Context, userID, productID int64) (entity.CartChange, error)
	Decrease(ctx context.Context, userID, productID int64) (entity.CartChange, error)
	// LockPricedLines lee las líneas con el precio vigente y las bloquea hasta el fin de la transacción.
	LockPricedLines(ctx context.Context, userID int64) ([]entity.PricedCartLine, error)
	ClearByUser(ctx context.Context, userID int64) error
}
