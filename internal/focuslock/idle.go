package focuslock

import (
	"sync"
	"time"
)

// IdleTimeout is the continuous-inactivity duration after which the gate
// auto-opens.
const IdleTimeout = 3 * time.Minute

// IdleMonitor owns the single idle timer. Every interaction rearms it to the
// full duration (last write wins), so it measures continuous inactivity, not
// elapsed wall time. While suspended (gate open) rearm attempts are no-ops.
// The monitor has no stop state; it runs for the process lifetime.
type IdleMonitor struct {
	mu        sync.Mutex
	timeout   time.Duration
	timer     *time.Timer
	suspended bool

	onIdle      func()
	overlayOpen func() bool
}

func NewIdleMonitor(timeout time.Duration, onIdle func()) *IdleMonitor {
	m := &IdleMonitor{
		timeout: timeout,
		onIdle:  onIdle,
	}
	m.mu.Lock()
	m.rearmLocked()
	m.mu.Unlock()
	return m
}

// SetOverlayCheck installs a hook reporting whether some other overlay is
// currently presented. When it reports true at expiry, the monitor rearms
// instead of firing: idle time spent inside another dialog does not count.
func (m *IdleMonitor) SetOverlayCheck(fn func() bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overlayOpen = fn
}

// Interaction rearms the timer, discarding any previously scheduled firing.
func (m *IdleMonitor) Interaction() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rearmLocked()
}

// Suspend stops the timer while the gate is open.
func (m *IdleMonitor) Suspend() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suspended = true
	m.stopLocked()
}

// Resume rearms the timer from zero after the gate closes.
func (m *IdleMonitor) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suspended = false
	m.rearmLocked()
}

func (m *IdleMonitor) rearmLocked() {
	if m.suspended {
		return
	}
	m.stopLocked()
	m.timer = time.AfterFunc(m.timeout, m.fire)
}

func (m *IdleMonitor) stopLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *IdleMonitor) fire() {
	m.mu.Lock()
	if m.suspended {
		m.mu.Unlock()
		return
	}
	if m.overlayOpen != nil && m.overlayOpen() {
		m.rearmLocked()
		m.mu.Unlock()
		return
	}
	onIdle := m.onIdle
	m.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}
