package client

import (
	"context"
	"sync"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/notify"
)

// Fetcher loads the authoritative portfolio record.
type Fetcher func(ctx context.Context) (*model.PortfolioRecord, error)

// Snapshot is the cache state handed to views.
type Snapshot struct {
	// Data is the last successfully fetched record; nil until the
	// first fetch completes.
	Data *model.PortfolioRecord
	// Loading is true until the first fetch settles.
	Loading bool
	// Err is the error of the most recent fetch, nil on success. A
	// failed refresh keeps the previous Data.
	Err error
}

// PortfolioCache holds one view's in-memory copy of the portfolio
// record. Each surface (admin panel, public site) owns an independent
// instance; instances sharing a notify.Broadcaster see each other's
// writes, like browser tabs reacting to a storage event.
type PortfolioCache struct {
	fetch Fetcher
	bus   notify.Broadcaster

	mu      sync.Mutex
	data    *model.PortfolioRecord
	loading bool
	err     error
	subs    map[chan struct{}]struct{}

	quit    chan struct{}
	stopBus func()
}

// NewPortfolioCache creates a cache in the loading state. bus may be
// nil for a standalone view with no cross-view sync.
func NewPortfolioCache(fetch Fetcher, bus notify.Broadcaster) *PortfolioCache {
	return &PortfolioCache{
		fetch:   fetch,
		bus:     bus,
		loading: true,
		subs:    make(map[chan struct{}]struct{}),
	}
}

// Start performs the initial fetch and begins listening for
// invalidation signals from other views. Each signal triggers a
// re-fetch of the authoritative record, so duplicate signals are
// harmless. Runs until ctx is cancelled or Stop is called.
func (c *PortfolioCache) Start(ctx context.Context) {
	_ = c.Refresh(ctx)

	if c.bus == nil {
		return
	}
	ticks, stop := c.bus.Subscribe(ctx)
	c.quit = make(chan struct{})
	c.stopBus = stop
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.quit:
				return
			case _, ok := <-ticks:
				if !ok {
					return
				}
				_ = c.Refresh(ctx)
			}
		}
	}()
}

// Stop ends the invalidation subscription and releases the listener.
// The broadcaster's stop only unregisters the subscriber, so the quit
// channel is what unblocks the goroutine.
func (c *PortfolioCache) Stop() {
	if c.stopBus != nil {
		c.stopBus()
		c.stopBus = nil
		close(c.quit)
	}
}

// Refresh re-fetches the record. On failure the previous data is kept
// and the error is exposed in the snapshot, so views degrade to stale
// data plus an error indicator instead of losing everything.
func (c *PortfolioCache) Refresh(ctx context.Context) error {
	record, err := c.fetch(ctx)

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = err
	} else {
		c.data = record
		c.err = nil
	}
	c.mu.Unlock()

	c.notifyViews()
	return err
}

// Snapshot returns the current cache state.
func (c *PortfolioCache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Data: c.data, Loading: c.loading, Err: c.err}
}

// Subscribe returns a channel ticked whenever the snapshot changes,
// plus a stop function. Views read Snapshot on each tick.
func (c *PortfolioCache) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()

	stop := func() {
		c.mu.Lock()
		delete(c.subs, ch)
		c.mu.Unlock()
	}
	return ch, stop
}

// ApplyWrite records a confirmed write: the local copy is updated
// optimistically (the server already accepted it) and every other view
// is signalled to re-fetch. Call only after the save succeeded, so a
// failed save never corrupts the cache.
func (c *PortfolioCache) ApplyWrite(ctx context.Context, record *model.PortfolioRecord) {
	c.mu.Lock()
	c.data = record
	c.err = nil
	c.loading = false
	c.mu.Unlock()

	c.notifyViews()
	if c.bus != nil {
		_ = c.bus.Publish(ctx)
	}
}

func (c *PortfolioCache) notifyViews() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
