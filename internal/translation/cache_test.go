package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func TestCachedBackendServesRepeats(t *testing.T) {
	next := &stubBackend{out: map[string]string{"Hola": "Hello"}}
	store := newMapStore()
	c := NewCachedBackend(next, store, time.Hour)

	for i := 0; i < 3; i++ {
		got, err := c.Translate(context.Background(), "Hola", "es", "en")
		require.NoError(t, err)
		assert.Equal(t, "Hello", got)
	}

	assert.Equal(t, 1, next.calls)
	key := CacheKey("stub", "Hola", "es", "en")
	assert.Equal(t, "Hello", store.data[key])
	assert.Equal(t, time.Hour, store.ttls[key])
	assert.Equal(t, "stub+cache", c.Name())
}

func TestCachedBackendBypassesBrokenStore(t *testing.T) {
	next := &stubBackend{out: map[string]string{"Hola": "Hello"}}
	store := newMapStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	c := NewCachedBackend(next, store, time.Hour)

	got, err := c.Translate(context.Background(), "Hola", "es", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
	assert.Equal(t, 1, next.calls)
}

func TestCachedBackendDoesNotCacheFailures(t *testing.T) {
	next := &stubBackend{err: errors.New("quota")}
	store := newMapStore()
	c := NewCachedBackend(next, store, time.Hour)

	_, err := c.Translate(context.Background(), "Hola", "es", "en")
	require.Error(t, err)
	assert.Empty(t, store.data)
}

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("google", "Hola", "es", "en")
	assert.True(t, strings.HasPrefix(k1, CACHE_KEY_PREFIX))
	assert.Equal(t, k1, CacheKey("google", "Hola", "es", "en"))
	assert.NotEqual(t, k1, CacheKey("openai", "Hola", "es", "en"))
	assert.NotEqual(t, k1, CacheKey("google", "Hola", "pt", "en"))
}

func TestNewValkeyStoreHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := NewValkeyStore(ctx, "127.0.0.1:1", "", false)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), VALKEY_PING_TIMEOUT)
}
