package sessions

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_BindIdentityUnbind(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "test:session:", 0)

	ctx := context.Background()
	require.NoError(t, repo.Bind(ctx, "h1", "alice"))

	got, err := repo.Identity(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, "alice", got)

	// bind is an idempotent overwrite
	require.NoError(t, repo.Bind(ctx, "h1", "bob"))
	got, err = repo.Identity(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, "bob", got)

	// unknown handle is simply unauthenticated
	got, err = repo.Identity(ctx, "missing")
	require.NoError(t, err)
	require.Equal(t, "", got)

	require.NoError(t, repo.Unbind(ctx, "h1"))
	got, err = repo.Identity(ctx, "h1")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestRedisRepository_TTLExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "test:session:", time.Second)

	ctx := context.Background()
	require.NoError(t, repo.Bind(ctx, "h2", "carol"))

	// visible immediately
	got, err := repo.Identity(ctx, "h2")
	require.NoError(t, err)
	require.Equal(t, "carol", got)

	// advance miniredis clock past TTL
	m.FastForward(2 * time.Second)

	got, err = repo.Identity(ctx, "h2")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestService_BindGeneratesOpaqueHandles(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	h1, err := svc.Bind(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, h1, 64)

	h2, err := svc.Bind(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)

	id, err := svc.Identity(ctx, h1)
	require.NoError(t, err)
	require.Equal(t, "alice", id)

	// empty handle short-circuits without touching the repository
	id, err = svc.Identity(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "", id)
}
