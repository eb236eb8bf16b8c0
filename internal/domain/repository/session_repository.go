package repository

import (
	"context"
	"time"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

// SessionRepository define el puerto del almacén de sesiones.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	// Get devuelve (nil, nil) si la sesión no existe.
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
