package usecase

import (
	"context"

	"github.com/jhoicas/raash-api/internal/application/dto"
	"github.com/jhoicas/raash-api/internal/domain"
	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// NoActionMessage respuesta al disminuir una línea que no existe.
const NoActionMessage = "No action taken"

// CartUseCase casos de uso del carrito.
type CartUseCase struct {
	repo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

// Get devuelve las líneas del carrito del usuario con los datos del producto.
func (uc *CartUseCase) Get(ctx context.Context, userID int64) ([]dto.CartItemResponse, error) {
	items, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CartItemResponse{
			ProductID:   it.ProductID,
			Name:        it.Name,
			Price:       it.Price,
			ImagePath:   it.ImagePath,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}
	return out, nil
}

// Update suma o resta una unidad. Los parámetros se validan antes de tocar la base de datos.
func (uc *CartUseCase) Update(ctx context.Context, userID int64, in dto.UpdateCartRequest) (*dto.UpdateCartResponse, error) {
	if in.ProductID <= 0 {
		return nil, domain.ErrInvalidCartAction
	}
	var (
		change entity.CartChange
		err    error
	)
	switch in.Action {
	case entity.CartActionIncrease:
		change, err = uc.repo.Increase(ctx, userID, in.ProductID.Int64())
	case entity.CartActionDecrease:
		change, err = uc.repo.Decrease(ctx, userID, in.ProductID.Int64())
	default:
		return nil, domain.ErrInvalidCartAction
	}
	if err != nil {
		return nil, err
	}
	if change == entity.CartLineUnchanged {
		return &dto.UpdateCartResponse{Success: false, Message: NoActionMessage}, nil
	}
	return &dto.UpdateCartResponse{Success: true}, nil
}
