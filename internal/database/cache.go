package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

const defaultCacheTTL = time.Hour

// CacheBuilder assembles a single cache operation. Every operation is a
// no-op on a nil client, so callers never need to know whether a cache is
// configured.
type CacheBuilder struct {
	client      CacheClient
	key         any
	hashPattern string
	value       any
	ttl         time.Duration
	ctx         context.Context
}

func NewCacheBuilder(client CacheClient, key any) *CacheBuilder {
	return &CacheBuilder{
		client: client,
		key:    key,
		ttl:    defaultCacheTTL,
		ctx:    context.Background(),
	}
}

// WithHashPattern formats the key, e.g. "member:%v".
func (b *CacheBuilder) WithHashPattern(pattern string) *CacheBuilder {
	b.hashPattern = pattern
	return b
}

func (b *CacheBuilder) WithStruct(value any) *CacheBuilder {
	b.value = value
	return b
}

func (b *CacheBuilder) WithTTL(ttl time.Duration) *CacheBuilder {
	if ttl > 0 {
		b.ttl = ttl
	}
	return b
}

func (b *CacheBuilder) WithContext(ctx context.Context) *CacheBuilder {
	if ctx != nil {
		b.ctx = ctx
	}
	return b
}

func (b *CacheBuilder) Key() string {
	if b.hashPattern != "" {
		return fmt.Sprintf(b.hashPattern, b.key)
	}
	return fmt.Sprint(b.key)
}

func (b *CacheBuilder) Set() error {
	if b.client == nil {
		return nil
	}

	payload, err := json.Marshal(b.value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for %s: %w", b.Key(), err)
	}

	cmd := b.client.B().Set().Key(b.Key()).Value(string(payload)).ExSeconds(int64(b.ttl.Seconds())).Build()
	if err := b.client.Do(b.ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", b.Key(), err)
	}
	return nil
}

// Get loads the cached value into dest. found is false on a miss or when
// no cache is configured.
func (b *CacheBuilder) Get(dest any) (bool, error) {
	if b.client == nil {
		return false, nil
	}

	payload, err := b.client.Do(b.ctx, b.client.B().Get().Key(b.Key()).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get cache key %s: %w", b.Key(), err)
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache key %s: %w", b.Key(), err)
	}
	return true, nil
}

func (b *CacheBuilder) Delete() error {
	if b.client == nil {
		return nil
	}

	if err := b.client.Do(b.ctx, b.client.B().Del().Key(b.Key()).Build()).Error(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", b.Key(), err)
	}
	return nil
}
