package lock

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout occurs when the write lock cannot be acquired within the bound.
var ErrTimeout = errors.New("write lock acquisition timed out")

// Coordinator serializes sheet writers. The whole read-resolve-write sequence
// of an upsert runs between Acquire and Release; a request that cannot take
// the lock within timeout fails instead of proceeding unsynchronized.
type Coordinator interface {
	Acquire(ctx context.Context, timeout time.Duration) error
	Release(ctx context.Context)
}
