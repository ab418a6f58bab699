package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockKey      = "leadgrid:sheet:write_lock"
	pollInterval = 50 * time.Millisecond
)

// Release only deletes a key this process set, never another holder's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisCoordinator implements the write lock with a Redis SETNX reservation,
// making the single-writer guarantee hold across replicas. The key carries a
// TTL so a crashed holder cannot wedge the sheet forever.
type RedisCoordinator struct {
	cache *redis.Client
	ttl   time.Duration

	mu    sync.Mutex
	owner string
}

// NewRedisCoordinator builds a Redis-backed coordinator. ttl bounds how long
// a dead holder can keep the lock reserved.
func NewRedisCoordinator(cache *redis.Client, ttl time.Duration) *RedisCoordinator {
	return &RedisCoordinator{cache: cache, ttl: ttl}
}

// Acquire polls SETNX until the lock is taken or timeout elapses.
func (c *RedisCoordinator) Acquire(ctx context.Context, timeout time.Duration) error {
	owner := uuid.NewString()
	deadline := time.Now().Add(timeout)

	for {
		ok, err := c.cache.SetNX(ctx, lockKey, owner, c.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			c.mu.Lock()
			c.owner = owner
			c.mu.Unlock()
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Release frees the lock if this coordinator still holds it.
func (c *RedisCoordinator) Release(ctx context.Context) {
	c.mu.Lock()
	owner := c.owner
	c.owner = ""
	c.mu.Unlock()
	if owner == "" {
		return
	}
	releaseScript.Run(ctx, c.cache, []string{lockKey}, owner) // best effort; TTL covers failures
}
