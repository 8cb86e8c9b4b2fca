package focuslock_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/ducnmm/studyvault/internal/focuslock"
)

func waitForFires(t *testing.T, fires *atomic.Int32, want int32, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fires.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d idle firings within %v, got %d", want, timeout, fires.Load())
}

func TestIdleMonitorFiresAfterTimeout(t *testing.T) {
	var fires atomic.Int32
	m := focuslock.NewIdleMonitor(30*time.Millisecond, func() { fires.Add(1) })
	defer m.Suspend()

	waitForFires(t, &fires, 1, time.Second)
}

func TestInteractionRearmsFromZero(t *testing.T) {
	var fires atomic.Int32
	m := focuslock.NewIdleMonitor(80*time.Millisecond, func() { fires.Add(1) })
	defer m.Suspend()

	// Keep interacting more often than the timeout; the timer must never
	// fire because every interaction restarts the full duration.
	for i := 0; i < 5; i++ {
		time.Sleep(30 * time.Millisecond)
		m.Interaction()
	}
	if got := fires.Load(); got != 0 {
		t.Fatalf("monitor fired %d times despite continuous interaction", got)
	}

	waitForFires(t, &fires, 1, time.Second)
}

func TestSuspendBlocksFiringAndRearm(t *testing.T) {
	var fires atomic.Int32
	m := focuslock.NewIdleMonitor(30*time.Millisecond, func() { fires.Add(1) })

	m.Suspend()
	m.Interaction() // must be a no-op while suspended
	time.Sleep(100 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("suspended monitor fired %d times", got)
	}

	m.Resume()
	waitForFires(t, &fires, 1, time.Second)
	m.Suspend()
}

func TestOverlayCheckRearmsInsteadOfFiring(t *testing.T) {
	var fires atomic.Int32
	var overlayOpen atomic.Bool
	overlayOpen.Store(true)

	m := focuslock.NewIdleMonitor(30*time.Millisecond, func() { fires.Add(1) })
	defer m.Suspend()
	m.SetOverlayCheck(overlayOpen.Load)

	// While another overlay is up, expiries silently rearm.
	time.Sleep(120 * time.Millisecond)
	if got := fires.Load(); got != 0 {
		t.Fatalf("monitor fired %d times while an overlay was open", got)
	}

	overlayOpen.Store(false)
	waitForFires(t, &fires, 1, time.Second)
}
