package lock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLocalCoordinatorSerializes(t *testing.T) {
	c := NewLocalCoordinator()
	ctx := context.Background()

	if err := c.Acquire(ctx, time.Second); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if err := c.Acquire(ctx, 50*time.Millisecond); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout while held, got %v", err)
	}
	c.Release(ctx)
	if err := c.Acquire(ctx, time.Second); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	c.Release(ctx)
}

func TestLocalCoordinatorReleaseWithoutHold(t *testing.T) {
	c := NewLocalCoordinator()
	ctx := context.Background()

	c.Release(ctx) // must not panic or free a phantom slot
	if err := c.Acquire(ctx, time.Second); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	c.Release(ctx)
}
