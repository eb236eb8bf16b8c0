package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones en la tabla sessions (mismo servidor que el resto de los datos).
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Save inserta o reemplaza la sesión.
func (r *SessionRepo) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	query := `
		INSERT INTO sessions (session_id, data, expires_at) VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at`
	if _, err := r.q.Exec(ctx, query, session.ID, data, session.ExpiresAt); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get obtiene una sesión por id (incluso si está expirada; la validez la decide el caller).
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	var (
		s    entity.Session
		data []byte
	)
	err := r.q.QueryRow(ctx,
		`SELECT session_id, data, expires_at FROM sessions WHERE session_id = $1`, id,
	).Scan(&s.ID, &data, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := json.Unmarshal(data, &s.User); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

// Delete elimina una sesión (logout).
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired purga sesiones vencidas y devuelve cuántas se eliminaron.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
