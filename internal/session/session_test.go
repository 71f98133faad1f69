package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/sales-console/internal/db"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "abc", "token-1"))
	token, ok, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", token)

	require.NoError(t, s.Set(ctx, "abc", "token-2"))
	token, _, _ = s.Get(ctx, "abc")
	assert.Equal(t, "token-2", token)

	require.NoError(t, s.Clear(ctx, "abc"))
	_, ok, err = s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Clear(ctx, "abc"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestFileStore_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "abc", "persisted"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	token, ok, err := reloaded.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", token)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	exerciseStore(t, NewRedisStore(rdb))

	require.NoError(t, NewRedisStore(rdb).Set(context.Background(), "xyz", "t"))
	assert.True(t, mr.Exists("session:xyz:access_token"))
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	database, err := db.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	s, err := NewPostgresStore(context.Background(), database)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	_, err := m.Begin(ctx, "")
	assert.Error(t, err)

	s, err := m.Begin(ctx, "opaque-token")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())
	assert.True(t, s.Authenticated())

	resumed, err := m.Resume(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", resumed.Token())

	require.NoError(t, m.End(ctx, s.ID()))
	_, err = m.Resume(ctx, s.ID())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.Resume(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, m.End(ctx, ""))
}

func TestSubject(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	assert.Equal(t, "admin", New("id", signed).Subject())
	assert.Equal(t, "", New("id", "opaque").Subject())
	assert.Equal(t, "", Anonymous.Subject())
	assert.False(t, Anonymous.Authenticated())
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Anonymous, FromContext(ctx))

	s := New("id", "tok")
	assert.Equal(t, s, FromContext(WithContext(ctx, s)))
}
