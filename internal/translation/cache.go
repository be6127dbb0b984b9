package translation

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/prsentiment/internal/models"
)

// Store is the key/value surface the cache needs.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedBackend serves repeated translations from a Store. Store failures are
// logged and the wrapped backend is called as if the cache were absent.
type CachedBackend struct {
	next  Backend
	store Store
	ttl   time.Duration
}

func NewCachedBackend(next Backend, store Store, ttl time.Duration) *CachedBackend {
	return &CachedBackend{next: next, store: store, ttl: ttl}
}

func (c *CachedBackend) Name() string {
	return c.next.Name() + "+cache"
}

func (c *CachedBackend) Translate(ctx context.Context, text string, source, target models.LanguageCode) (string, error) {
	key := CacheKey(c.next.Name(), text, source, target)

	getCtx, cancel := context.WithTimeout(ctx, CACHE_OP_TIMEOUT)
	cached, found, err := c.store.Get(getCtx, key)
	cancel()
	if err != nil {
		slog.Warn("[TranslationCache] Cache read failed, bypassing",
			slog.String("error", err.Error()))
	} else if found {
		slog.Debug("[TranslationCache] Cache hit", slog.String("key", key))
		return cached, nil
	}

	translated, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	setCtx, cancel := context.WithTimeout(ctx, CACHE_OP_TIMEOUT)
	defer cancel()
	if err := c.store.Set(setCtx, key, translated, c.ttl); err != nil {
		slog.Warn("[TranslationCache] Cache write failed",
			slog.String("error", err.Error()))
	}

	return translated, nil
}

// CacheKey is stable across runs for the same backend, languages and text.
func CacheKey(backend, text string, source, target models.LanguageCode) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%s:%s", backend, source, target, text)))
	return CACHE_KEY_PREFIX + hex.EncodeToString(sum[:])
}

// ValkeyStore implements Store on a Valkey server.
type ValkeyStore struct {
	Client valkey.Client
}

func NewValkeyStore(ctx context.Context, addr, password string, useTLS bool) (*ValkeyStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("[ValkeyStore] connecting to %s: %w", addr, err)
	}

	opts := valkey.ClientOption{
		InitAddress: []string{
			addr,
		},
		Password:         password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if useTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyStore] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, VALKEY_PING_TIMEOUT)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyStore] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyStore] Successfully connected to valkey", slog.String("address", addr))
	return &ValkeyStore{Client: client}, nil
}

func (v *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := v.Client.Do(ctx, v.Client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (v *ValkeyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	cmd := v.Client.B().Set().Key(key).Value(value).ExSeconds(int64(ttl.Seconds())).Build()
	return v.Client.Do(ctx, cmd).Error()
}

func (v *ValkeyStore) Ping(ctx context.Context) error {
	return v.Client.Do(ctx, v.Client.B().Ping().Build()).Error()
}

func (v *ValkeyStore) Close() {
	v.Client.Close()
}
