package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func setupTestRedis(t *testing.T) *Redis {
	t.Helper()
	s := miniredis.RunT(t)
	b, err := NewRedis("redis://" + s.Addr())
	if err != nil {
		t.Fatalf("failed to create redis broadcaster: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestRedis_PublishReachesSubscriber(t *testing.T) {
	b := setupTestRedis(t)
	ctx := context.Background()

	ch, stop := b.Subscribe(ctx)
	defer stop()

	// go-redis confirms the subscription lazily; give it a moment
	// before publishing so the tick is not lost.
	deadline := time.After(2 * time.Second)
	received := false
	for !received {
		if err := b.Publish(ctx); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
		select {
		case <-ch:
			received = true
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("subscriber never received a tick")
		}
	}
}

func TestRedis_StopEndsSubscription(t *testing.T) {
	b := setupTestRedis(t)
	ctx := context.Background()

	ch, stop := b.Subscribe(ctx)
	stop()

	if err := b.Publish(ctx); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("stopped subscriber received a tick")
		}
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewRedis_BadURL(t *testing.T) {
	if _, err := NewRedis("not-a-url"); err == nil {
		t.Error("expected error for malformed redis url")
	}
}
