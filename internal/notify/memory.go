package notify

import (
	"context"
	"sync"
)

// Memory is an in-process Broadcaster for views living in the same
// process (the single-binary deployment case).
type Memory struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// NewMemory creates an empty in-process broadcaster.
func NewMemory() *Memory {
	return &Memory{subs: make(map[chan struct{}]struct{})}
}

var _ Broadcaster = (*Memory)(nil)

// Publish ticks every subscriber. Sends never block: a subscriber that
// already has a pending tick keeps just that one, which is enough for
// an invalidation signal.
func (m *Memory) Publish(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribe registers a new subscriber channel. The returned stop
// function unregisters it; the channel is not closed so a late Publish
// cannot panic.
func (m *Memory) Subscribe(ctx context.Context) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	m.mu.Lock()
	m.subs[ch] = struct{}{}
	m.mu.Unlock()

	stop := func() {
		m.mu.Lock()
		delete(m.subs, ch)
		m.mu.Unlock()
	}
	return ch, stop
}
