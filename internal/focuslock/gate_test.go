package focuslock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/focuslock"
)

type fakeSource struct {
	mu    sync.Mutex
	batch []focuslock.Question
	err   error
	block chan struct{}
	calls int
}

func (f *fakeSource) FetchBatch(ctx context.Context) ([]focuslock.Question, error) {
	f.mu.Lock()
	f.calls++
	batch, err, block := f.batch, f.err, f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return batch, err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestGate(source *fakeSource) *focuslock.Gate {
	// A long idle timeout keeps the monitor out of these tests.
	return focuslock.NewGate(source, time.Hour)
}

func TestGateOpenSubmitClose(t *testing.T) {
	source := &fakeSource{batch: testBatch()}
	g := newTestGate(source)

	s, err := g.Open(context.Background(), focuslock.TriggerManual)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if s.State() != focuslock.StatePresenting {
		t.Fatalf("opened session should be presenting, got %s", s.State())
	}
	if id, open := g.CurrentID(); !open || id != s.ID() {
		t.Fatal("gate should report the opened session as current")
	}

	res, result, err := g.Submit(s.ID(), "Paris")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.Correct {
		t.Error("correct answer should be graded correct")
	}
	if result != nil {
		t.Error("result should only appear on the completing submission")
	}

	if err := g.Close(s.ID()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, open := g.CurrentID(); open {
		t.Error("gate should be closed after dismissal")
	}
	if _, ok := g.Get(s.ID()); ok {
		t.Error("dismissed session should be discarded")
	}
	if _, _, err := g.Submit(s.ID(), "late"); !errors.Is(err, focuslock.ErrSessionNotFound) {
		t.Errorf("submit to a dismissed session should fail with ErrSessionNotFound, got %v", err)
	}
}

func TestGateRejectsSecondOpen(t *testing.T) {
	source := &fakeSource{batch: testBatch()}
	g := newTestGate(source)

	s, err := g.Open(context.Background(), focuslock.TriggerManual)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if _, err := g.Open(context.Background(), focuslock.TriggerIdle); !errors.Is(err, focuslock.ErrGateOpen) {
		t.Fatalf("second open should fail with ErrGateOpen, got %v", err)
	}
	if source.callCount() != 1 {
		t.Errorf("rejected open must not fetch a batch, got %d fetches", source.callCount())
	}

	if err := g.Close(s.ID()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := g.Open(context.Background(), focuslock.TriggerManual); err != nil {
		t.Errorf("gate should reopen after close: %v", err)
	}
}

func TestGateFetchFailureDegradesSession(t *testing.T) {
	source := &fakeSource{err: errors.New("backend unavailable")}
	g := newTestGate(source)

	s, err := g.Open(context.Background(), focuslock.TriggerManual)
	if err != nil {
		t.Fatalf("Open should surface a degraded session, not an error: %v", err)
	}
	if s.State() != focuslock.StateErrored {
		t.Fatalf("fetch failure should error the session, got %s", s.State())
	}

	// The gate stays passively open until dismissed.
	if _, open := g.CurrentID(); !open {
		t.Error("gate should remain open on an errored session")
	}
	if err := g.Close(s.ID()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestGateAutoClosesAfterCompletion(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the result display delay")
	}
	source := &fakeSource{batch: testBatch()}
	g := newTestGate(source)

	s, err := g.Open(context.Background(), focuslock.TriggerManual)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var result *focuslock.Result
	for _, answer := range []string{"Paris", "H2O", "2x"} {
		_, result, err = g.Submit(s.ID(), answer)
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}
	if result == nil || !result.Unlocked {
		t.Fatal("expected an unlocking result")
	}

	deadline := time.Now().Add(result.CloseAfter + 2*time.Second)
	for time.Now().Before(deadline) {
		if _, open := g.CurrentID(); !open {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("gate did not auto-close after the result display delay")
}

func TestIdleTriggerOpensGate(t *testing.T) {
	source := &fakeSource{batch: testBatch()}
	g := focuslock.NewGate(source, 30*time.Millisecond)

	var id uuid.UUID
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current, open := g.CurrentID(); open {
			id = current
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if id == uuid.Nil {
		t.Fatal("idle expiry did not open the gate")
	}

	s, ok := g.Get(id)
	if !ok {
		t.Fatal("current session not found")
	}
	if s.Trigger() != focuslock.TriggerIdle {
		t.Errorf("idle-opened session should carry the idle trigger, got %s", s.Trigger())
	}

	// While the gate is open the monitor is suspended: no second session
	// appears even after another timeout worth of inactivity.
	time.Sleep(100 * time.Millisecond)
	if current, _ := g.CurrentID(); current != id {
		t.Error("a second idle session opened while the gate was already open")
	}
	if err := g.Close(id); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestOverlayOpenDefersIdleGate(t *testing.T) {
	source := &fakeSource{batch: testBatch()}
	g := focuslock.NewGate(source, 30*time.Millisecond)
	g.SetOverlayOpen(true)

	// Several timeouts pass while the other overlay is up; every expiry
	// rearms instead of opening the gate.
	time.Sleep(150 * time.Millisecond)
	if _, open := g.CurrentID(); open {
		t.Fatal("gate opened while another overlay was presented")
	}

	g.SetOverlayOpen(false)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, open := g.CurrentID(); open {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("gate did not open after the other overlay closed")
}

func TestDismissDuringLoadingDiscardsLateBatch(t *testing.T) {
	release := make(chan struct{})
	source := &fakeSource{batch: testBatch(), block: release}
	g := newTestGate(source)

	type openResult struct {
		s   *focuslock.Session
		err error
	}
	done := make(chan openResult, 1)
	go func() {
		s, err := g.Open(context.Background(), focuslock.TriggerManual)
		done <- openResult{s, err}
	}()

	// Wait for the session to register, then dismiss it mid-fetch.
	var id uuid.UUID
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if current, open := g.CurrentID(); open {
			id = current
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if id == uuid.Nil {
		t.Fatal("session never registered")
	}
	if err := g.Close(id); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	close(release)
	res := <-done
	if !errors.Is(res.err, focuslock.ErrSessionDismissed) {
		t.Fatalf("late fetch should be discarded with ErrSessionDismissed, got %v", res.err)
	}
	if _, open := g.CurrentID(); open {
		t.Error("gate should stay closed after a dismissed load")
	}

	// The gate is usable again immediately.
	if _, err := g.Open(context.Background(), focuslock.TriggerManual); err != nil {
		t.Errorf("gate should reopen after a dismissed load: %v", err)
	}
}
