// Package session administra las sesiones autenticadas persistidas en la base de datos.
// La cookie solo lleva un token firmado con el id de la sesión; los datos del usuario viven en el almacén.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
	"github.com/jhoicas/raash-api/pkg/jwt"
)

// Config parámetros de firma y vigencia.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Service crea, resuelve y destruye sesiones.
type Service struct {
	repo  repository.SessionRepository
	cfg   Config
	now   func() time.Time
	newID func() string
}

// NewService construye el servicio de sesiones.
func NewService(repo repository.SessionRepository, cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &Service{repo: repo, cfg: cfg, now: time.Now, newID: uuid.NewString}
}

// TTL vigencia de la sesión (y de la cookie).
func (s *Service) TTL() time.Duration { return s.cfg.TTL }

// Create persiste una sesión nueva para el usuario y devuelve el token de la cookie y su expiración.
func (s *Service) Create(ctx context.Context, user entity.SessionUser) (string, time.Time, error) {
	sess := &entity.Session{
		ID:        s.newID(),
		User:      user,
		ExpiresAt: s.now().Add(s.cfg.TTL),
	}
	if err := s.repo.Save(ctx, sess); err != nil {
		return "", time.Time{}, err
	}
	token, err := jwt.Generate(s.cfg.Secret, sess.ID, s.cfg.Issuer, s.cfg.TTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("firmar sesión: %w", err)
	}
	return token, sess.ExpiresAt, nil
}

// Resolve devuelve el usuario de la sesión, o nil si el token es inválido, la sesión no existe o expiró.
// No modifica la sesión.
func (s *Service) Resolve(ctx context.Context, token string) (*entity.SessionUser, error) {
	if token == "" {
		return nil, nil
	}
	sid, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil {
		return nil, nil
	}
	sess, err := s.repo.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Expired(s.now()) {
		return nil, nil
	}
	u := sess.User
	return &u, nil
}

// Destroy elimina la sesión asociada al token. Un token inválido no es error: no hay nada que cerrar.
func (s *Service) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sid, err := jwt.Parse(s.cfg.Secret, token)
	if err != nil {
		return nil
	}
	return s.repo.Delete(ctx, sid)
}

// PurgeExpired elimina las sesiones vencidas.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, s.now())
}

// RunCleanup purga sesiones vencidas cada `every` hasta que ctx se cancele.
func (s *Service) RunCleanup(ctx context.Context, every time.Duration, log zerolog.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				log.Error().Err(err).Msg("purga de sesiones")
				continue
			}
			if n > 0 {
				log.Debug().Int64("sessions", n).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}
