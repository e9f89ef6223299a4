// Package cache holds the Redis-backed verification lookup cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Test-app01/sans-intern-verify/internal/config"
	"github.com/Test-app01/sans-intern-verify/internal/domain"
)

const (
	keyPrefix       = "verify:"
	tombstonePrefix = "verify:gone:"
	defaultTTL      = 5 * time.Minute
)

// storeScript writes the entries in KEYS[1..n] unless any tombstone in
// KEYS[n+1..2n] exists. ARGV: payload, ttl in ms, n.
const storeScript = `
local n = tonumber(ARGV[3])
for i = 1, n do
  if redis.call("EXISTS", KEYS[n + i]) == 1 then
    return 0
  end
end
for i = 1, n do
  redis.call("SET", KEYS[i], ARGV[1], "PX", ARGV[2])
end
return 1
`

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.CacheConfig) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// VerificationCache stores intern records under their normalized codes.
// Invalidate leaves a tombstone per code for one TTL; while it exists Set
// is a no-op, so a lookup that read the row before a change cannot put the
// old record back.
type VerificationCache struct {
	client redis.UniversalClient
	ttl    time.Duration
	store  *redis.Script
}

// NewVerificationCache constructs a Redis-backed verification cache.
// A non-positive ttl falls back to five minutes.
func NewVerificationCache(client redis.UniversalClient, ttl time.Duration) *VerificationCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &VerificationCache{
		client: client,
		ttl:    ttl,
		store:  redis.NewScript(storeScript),
	}
}

// Get returns the cached record for code, or nil on a miss.
func (c *VerificationCache) Get(ctx context.Context, code string) (*domain.Intern, error) {
	payload, err := c.client.Get(ctx, keyPrefix+domain.NormalizeCode(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cached intern: %w", err)
	}

	var in domain.Intern
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, fmt.Errorf("decode cached intern: %w", err)
	}
	return &in, nil
}

// Set stores the record under both of its codes unless either code was
// invalidated within the last TTL.
func (c *VerificationCache) Set(ctx context.Context, in *domain.Intern) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal intern: %w", err)
	}

	codes := in.Codes()
	keys := make([]string, 0, 2*len(codes))
	for _, code := range codes {
		keys = append(keys, keyPrefix+domain.NormalizeCode(code))
	}
	for _, code := range codes {
		keys = append(keys, tombstonePrefix+domain.NormalizeCode(code))
	}

	err = c.store.Run(ctx, c.client, keys, payload, c.ttl.Milliseconds(), len(codes)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("persist cached intern: %w", err)
	}
	return nil
}

// Invalidate drops the cached entries for the given codes and tombstones them.
func (c *VerificationCache) Invalidate(ctx context.Context, codes ...string) error {
	if len(codes) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	keys := make([]string, len(codes))
	for i, code := range codes {
		code = domain.NormalizeCode(code)
		keys[i] = keyPrefix + code
		pipe.Set(ctx, tombstonePrefix+code, 1, c.ttl)
	}
	pipe.Del(ctx, keys...)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate cached intern: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (c *VerificationCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
