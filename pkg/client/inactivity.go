package client

import (
	"sync"
	"time"
)

// InactivityTimeout is the idle period after which an active session is
// logged out locally.
const InactivityTimeout = time.Hour

// InactivityMonitor triggers a logout callback after a fixed idle
// period. It is advisory: it discards the session client-side but
// cannot revoke a still-unexpired server token, and touching it does
// not extend the token's absolute expiry.
//
// The monitor runs only while a session is active: Start it after
// login, Stop it on logout. Activity events call Touch, which
// reschedules the single underlying timer (debounce, no timer per
// event).
type InactivityMonitor struct {
	timeout time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	running bool
}

// NewInactivityMonitor creates a monitor with the given idle timeout.
// Production callers pass InactivityTimeout.
func NewInactivityMonitor(timeout time.Duration) *InactivityMonitor {
	return &InactivityMonitor{timeout: timeout}
}

// Start arms the countdown. onTimeout fires once when the idle period
// elapses with no Touch; the monitor then disarms itself. Starting an
// already running monitor restarts the countdown.
func (m *InactivityMonitor) Start(onTimeout func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.running = true
	m.timer = time.AfterFunc(m.timeout, func() {
		m.mu.Lock()
		if !m.running {
			m.mu.Unlock()
			return
		}
		m.running = false
		m.mu.Unlock()
		onTimeout()
	})
}

// Touch resets the countdown. Touches while stopped are ignored.
func (m *InactivityMonitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running || m.timer == nil {
		return
	}
	m.timer.Reset(m.timeout)
}

// Stop disarms the countdown without firing the callback.
func (m *InactivityMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = false
	if m.timer != nil {
		m.timer.Stop()
	}
}
