package focuslock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
)

var (
	ErrGateOpen         = errors.New("gate already open")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionDismissed = errors.New("session dismissed")
)

// QuestionSource supplies a fresh batch per gate activation.
type QuestionSource interface {
	FetchBatch(ctx context.Context) ([]Question, error)
}

// Gate coordinates the focus-lock overlay: at most one open session at a
// time, an idle monitor that opens it after sustained inactivity, and
// auto-close timers once a session completes. Sessions hold no persistent
// state; each activation fetches a fresh batch and dismissal discards it.
type Gate struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	current  uuid.UUID
	open     bool

	source      QuestionSource
	monitor     *IdleMonitor
	overlayOpen atomic.Bool
}

func NewGate(source QuestionSource, idleTimeout time.Duration) *Gate {
	g := &Gate{
		sessions: make(map[uuid.UUID]*Session),
		source:   source,
	}
	g.monitor = NewIdleMonitor(idleTimeout, g.openOnIdle)
	g.monitor.SetOverlayCheck(g.overlayOpen.Load)
	return g
}

// SetOverlayCheck replaces the monitor's overlay hook; by default it reads
// the flag fed by SetOverlayOpen.
func (g *Gate) SetOverlayCheck(fn func() bool) {
	g.monitor.SetOverlayCheck(fn)
}

// SetOverlayOpen records whether another dialog is covering the workspace.
// While it is, idle expiry rearms instead of opening the gate.
func (g *Gate) SetOverlayOpen(open bool) {
	g.overlayOpen.Store(open)
}

// Activity records a user interaction, rearming the idle timer.
func (g *Gate) Activity() {
	g.monitor.Interaction()
}

// Open activates the gate and fetches a question batch. The fetch is not
// cancelled when the session is dismissed mid-load; the late result is
// simply discarded.
func (g *Gate) Open(ctx context.Context, trigger TriggerReason) (*Session, error) {
	g.mu.Lock()
	if g.open {
		g.mu.Unlock()
		return nil, ErrGateOpen
	}
	s := NewSession(trigger)
	g.sessions[s.ID()] = s
	g.current = s.ID()
	g.open = true
	g.monitor.Suspend()
	g.mu.Unlock()

	batch, err := g.source.FetchBatch(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, still := g.sessions[s.ID()]; !still {
		return nil, ErrSessionDismissed
	}
	if err != nil {
		s.Fail("Could not load the question batch.")
		return s, nil
	}
	s.Begin(batch)
	return s, nil
}

// Submit grades an answer for the given session. When the submission
// completes the session, the gate schedules its own close after the
// result's display delay.
func (g *Gate) Submit(id uuid.UUID, answer string) (*SubmitResult, *Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.sessions[id]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}

	res, err := s.Submit(answer)
	if err != nil {
		return nil, nil, err
	}

	if res.State == StateComplete {
		result, _ := s.Result()
		time.AfterFunc(result.CloseAfter, func() {
			if err := g.Close(id); err != nil && !errors.Is(err, ErrSessionNotFound) {
				config.WithContext(context.Background()).WithError(err).Warn("Failed to auto-close gate")
			}
		})
		return res, result, nil
	}
	return res, nil, nil
}

// Get returns the session with the given id, if it is still live.
func (g *Gate) Get(id uuid.UUID) (*Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	return s, ok
}

// CurrentID returns the id of the open session, if any.
func (g *Gate) CurrentID() (uuid.UUID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.open {
		return uuid.Nil, false
	}
	return g.current, true
}

// Close discards a session and rearms the idle monitor from zero.
func (g *Gate) Close(id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(g.sessions, id)
	if g.current == id {
		g.current = uuid.Nil
		g.open = false
		g.monitor.Resume()
	}
	return nil
}

func (g *Gate) openOnIdle() {
	ctx := context.Background()
	log := config.WithContext(ctx)

	s, err := g.Open(ctx, TriggerIdle)
	if err != nil {
		if errors.Is(err, ErrGateOpen) {
			return
		}
		log.WithError(err).Warn("Failed to open gate on idle")
		return
	}
	log.WithField("session_id", s.ID().String()).Info("Gate opened after sustained inactivity")
}
