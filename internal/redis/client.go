package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tradehall/internal/config"
	"tradehall/internal/domain"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

type Cache[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, value *T) error
	Delete(ctx context.Context, key string) error
}

// JSONCache stores values as JSON under "<prefix>:<key>". A nil cache or a
// cache without a client is a no-op that always misses.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache[T]) key(key string) string {
	return c.prefix + ":" + key
}

func (c *JSONCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal(value, &out); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", c.key(key), err)
	}
	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key(key), err)
	}
	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(key)).Err()
}

// StoreCache holds store snapshots keyed by store id. Each store has a
// generation counter under "store-gen:<id>" that Invalidate bumps; a snapshot
// is served only while it carries the current generation, so a snapshot read
// from the database before a trade committed can never outlive that trade.
type StoreCache struct {
	cache  Cache[storeEntry]
	client *redis.Client
	ttl    time.Duration
}

type storeEntry struct {
	Generation int64             `json:"generation"`
	State      domain.StoreState `json:"state"`
}

func NewStoreCache(client *redis.Client, ttl time.Duration) *StoreCache {
	return &StoreCache{
		cache:  NewJSONCache[storeEntry](client, "store", ttl),
		client: client,
		ttl:    ttl,
	}
}

func (c *StoreCache) generationKey(id uuid.UUID) string {
	return "store-gen:" + id.String()
}

// Generation returns the store's current cache generation. Read it before
// loading the store that will be passed to Set.
func (c *StoreCache) Generation(ctx context.Context, id uuid.UUID) (int64, error) {
	if c.client == nil {
		return 0, nil
	}

	gen, err := c.client.Get(ctx, c.generationKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *StoreCache) Get(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	entry, err := c.cache.Get(ctx, id.String())
	if err != nil || entry == nil {
		return nil, err
	}

	gen, err := c.Generation(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Generation != gen {
		return nil, nil
	}
	return domain.RestoreStore(entry.State)
}

// Set caches a snapshot loaded under generation gen.
func (c *StoreCache) Set(ctx context.Context, store *domain.Store, gen int64) error {
	return c.cache.Set(ctx, store.ID().String(), &storeEntry{Generation: gen, State: store.State()})
}

// Invalidate bumps the store's generation and drops its snapshot. The
// generation outlives snapshots so an expired counter cannot revive one.
func (c *StoreCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c.client == nil {
		return nil
	}

	genKey := c.generationKey(id)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		if c.ttl > 0 {
			pipe.Expire(ctx, genKey, 10*c.ttl)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.cache.Delete(ctx, id.String())
}
