package client

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestInactivityMonitor_FiresAfterIdle(t *testing.T) {
	m := NewInactivityMonitor(30 * time.Millisecond)

	var fired atomic.Bool
	m.Start(func() { fired.Store(true) })

	waitFor(t, fired.Load)
}

func TestInactivityMonitor_TouchDefersTimeout(t *testing.T) {
	m := NewInactivityMonitor(60 * time.Millisecond)

	var fired atomic.Bool
	m.Start(func() { fired.Store(true) })

	// Keep touching for longer than the timeout; the countdown must
	// keep resetting.
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		m.Touch()
	}
	if fired.Load() {
		t.Fatal("monitor fired despite activity")
	}

	waitFor(t, fired.Load)
}

func TestInactivityMonitor_StopPreventsFiring(t *testing.T) {
	m := NewInactivityMonitor(20 * time.Millisecond)

	var fired atomic.Bool
	m.Start(func() { fired.Store(true) })
	m.Stop()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("stopped monitor must not fire")
	}
}

func TestInactivityMonitor_TouchAfterStopIgnored(t *testing.T) {
	m := NewInactivityMonitor(20 * time.Millisecond)

	var fired atomic.Bool
	m.Start(func() { fired.Store(true) })
	m.Stop()
	m.Touch()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("touch after stop must not rearm the monitor")
	}
}
