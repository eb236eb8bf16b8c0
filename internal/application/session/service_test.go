package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/raash-api/internal/domain/entity"
)

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]entity.Session{}}
}

func (r *memSessionRepo) Save(_ context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

var testUser = entity.SessionUser{UserID: 5, Email: "asha@example.com", FullName: "Asha Rao", UserType: "customer"}

func newTestService(repo *memSessionRepo, now *time.Time) *Service {
	svc := NewService(repo, Config{Secret: "test-secret", Issuer: "raash-test", TTL: 24 * time.Hour})
	svc.now = func() time.Time { return *now }
	return svc
}

func TestService_CreateYResolve(t *testing.T) {
	now := time.Now()
	repo := newMemSessionRepo()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	token, expires, err := svc.Create(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), expires)
	assert.Len(t, repo.sessions, 1)

	u, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, testUser, *u)
}

func TestService_ResolveSesionExpirada(t *testing.T) {
	now := time.Now()
	repo := newMemSessionRepo()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	token, _, err := svc.Create(ctx, testUser)
	require.NoError(t, err)

	// La fila sigue existiendo pero la sesión venció.
	for id, s := range repo.sessions {
		s.ExpiresAt = now.Add(-time.Second)
		repo.sessions[id] = s
	}
	u, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Len(t, repo.sessions, 1, "Resolve no modifica el almacén")
}

func TestService_ResolveTokenInvalidoOSinSesion(t *testing.T) {
	now := time.Now()
	svc := newTestService(newMemSessionRepo(), &now)
	ctx := context.Background()

	u, err := svc.Resolve(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.Resolve(ctx, "no-es-un-token")
	assert.NoError(t, err)
	assert.Nil(t, u)

	// Token bien firmado por otro servicio pero sin fila en este almacén.
	other := newTestService(newMemSessionRepo(), &now)
	token, _, err := other.Create(ctx, testUser)
	require.NoError(t, err)
	u, err = svc.Resolve(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestService_Destroy(t *testing.T) {
	now := time.Now()
	repo := newMemSessionRepo()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	token, _, err := svc.Create(ctx, testUser)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, token))
	assert.Empty(t, repo.sessions)

	u, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.NoError(t, svc.Destroy(ctx, "basura"))
}

func TestService_PurgeExpired(t *testing.T) {
	now := time.Now()
	repo := newMemSessionRepo()
	svc := newTestService(repo, &now)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, testUser)
	require.NoError(t, err)

	n, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	now = now.Add(25 * time.Hour)
	n, err = svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, repo.sessions)
}
