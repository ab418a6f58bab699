package lock

import (
	"context"
	"time"
)

// LocalCoordinator serializes writers within a single process using a
// buffered-channel semaphore. Used in development mode and tests, where the
// in-memory sheet has no other writers anyway.
type LocalCoordinator struct {
	sem chan struct{}
}

// NewLocalCoordinator builds an in-process coordinator.
func NewLocalCoordinator() *LocalCoordinator {
	return &LocalCoordinator{sem: make(chan struct{}, 1)}
}

func (c *LocalCoordinator) Acquire(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case c.sem <- struct{}{}:
		return nil
	case <-timer.C:
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *LocalCoordinator) Release(_ context.Context) {
	select {
	case <-c.sem:
	default:
	}
}
