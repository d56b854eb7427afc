package notify

import (
	"context"
	"testing"
)

func TestMemory_PublishReachesSubscribers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ch1, stop1 := m.Subscribe(ctx)
	defer stop1()
	ch2, stop2 := m.Subscribe(ctx)
	defer stop2()

	if err := m.Publish(ctx); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case <-ch1:
	default:
		t.Error("subscriber 1 did not receive a tick")
	}
	select {
	case <-ch2:
	default:
		t.Error("subscriber 2 did not receive a tick")
	}
}

func TestMemory_PublishCoalesces(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ch, stop := m.Subscribe(ctx)
	defer stop()

	// A slow subscriber keeps at most one pending tick.
	_ = m.Publish(ctx)
	_ = m.Publish(ctx)
	_ = m.Publish(ctx)

	ticks := 0
	for {
		select {
		case <-ch:
			ticks++
			continue
		default:
		}
		break
	}
	if ticks != 1 {
		t.Errorf("expected 1 coalesced tick, got %d", ticks)
	}
}

func TestMemory_StoppedSubscriberNotDelivered(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	ch, stop := m.Subscribe(ctx)
	stop()

	if err := m.Publish(ctx); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case <-ch:
		t.Error("stopped subscriber received a tick")
	default:
	}
}

func TestMemory_PublishWithNoSubscribers(t *testing.T) {
	m := NewMemory()
	if err := m.Publish(context.Background()); err != nil {
		t.Errorf("Publish with no subscribers failed: %v", err)
	}
}
