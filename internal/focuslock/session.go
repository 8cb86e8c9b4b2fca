package focuslock

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MinCorrectToUnlock is the number of correct answers required to unlock.
const MinCorrectToUnlock = 2

// Display delays. The failure path stays on screen longer than the success
// path so the corrective message can actually be read.
const (
	FeedbackDelay    = 2500 * time.Millisecond
	UnlockCloseDelay = 2500 * time.Millisecond
	RetryCloseDelay  = 4 * time.Second
	EmptyCloseDelay  = 3 * time.Second
)

type TriggerReason string

const (
	TriggerManual TriggerReason = "manual"
	TriggerIdle   TriggerReason = "idle"
)

type State string

const (
	// StateLoading covers the window between activation and the arrival of
	// the question batch; inputs are disabled.
	StateLoading State = "loading"
	// StatePresenting means the question at the cursor is on screen.
	StatePresenting State = "presenting"
	// StateComplete is terminal; the unlock decision has been made.
	StateComplete State = "complete"
	// StateErrored is the degenerate terminal state entered when the batch
	// was empty or could not be fetched. The gate stays passively open until
	// dismissed.
	StateErrored State = "errored"
)

type Question struct {
	Prompt   string `json:"prompt"`
	Answer   string `json:"-"`
	Category string `json:"category,omitempty"`
}

var (
	ErrNotPresenting   = errors.New("session is not presenting a question")
	ErrSessionComplete = errors.New("session already complete")
)

// Session is one gate activation: a fixed batch of questions walked through
// exactly once. It is not safe for concurrent use; the Gate serializes
// access.
type Session struct {
	id      uuid.UUID
	trigger TriggerReason

	state    State
	batch    []Question
	cursor   int
	correct  int
	errorMsg string
	result   *Result

	openedAt time.Time
}

type SubmitResult struct {
	Correct       bool
	CorrectAnswer string
	Cursor        int
	State         State
}

// Result is the unlock decision, evaluated exactly once at completion.
type Result struct {
	Unlocked   bool
	Correct    int
	Total      int
	CloseAfter time.Duration
}

func NewSession(trigger TriggerReason) *Session {
	return &Session{
		id:       uuid.New(),
		trigger:  trigger,
		state:    StateLoading,
		openedAt: time.Now(),
	}
}

// Begin installs the fetched batch. An empty batch leaves the session in
// the degenerate errored state.
func (s *Session) Begin(batch []Question) {
	if s.state != StateLoading {
		return
	}
	if len(batch) == 0 {
		s.state = StateErrored
		s.errorMsg = "No questions available right now. Upload and summarize more documents!"
		return
	}
	s.batch = batch
	s.state = StatePresenting
}

// Fail records a load failure and moves to the degenerate errored state.
func (s *Session) Fail(message string) {
	if s.state != StateLoading {
		return
	}
	s.state = StateErrored
	s.errorMsg = message
}

// Submit grades the answer for the question at the cursor and advances.
// The cursor moves by exactly one per call and never backwards; a submit
// after completion is rejected.
func (s *Session) Submit(answer string) (*SubmitResult, error) {
	switch s.state {
	case StateComplete:
		return nil, ErrSessionComplete
	case StatePresenting:
	default:
		return nil, ErrNotPresenting
	}
	if s.cursor >= len(s.batch) {
		return nil, ErrSessionComplete
	}

	q := s.batch[s.cursor]
	correct := CheckAnswer(answer, q.Answer)
	if correct {
		s.correct++
	}
	s.cursor++

	if s.cursor == len(s.batch) {
		s.complete()
	}

	return &SubmitResult{
		Correct:       correct,
		CorrectAnswer: q.Answer,
		Cursor:        s.cursor,
		State:         s.state,
	}, nil
}

func (s *Session) complete() {
	s.state = StateComplete

	result := &Result{
		Correct: s.correct,
		Total:   len(s.batch),
	}
	switch {
	case result.Total == 0:
		result.CloseAfter = EmptyCloseDelay
	case result.Correct >= MinCorrectToUnlock:
		result.Unlocked = true
		result.CloseAfter = UnlockCloseDelay
	default:
		result.CloseAfter = RetryCloseDelay
	}
	s.result = result
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) Trigger() TriggerReason { return s.trigger }
func (s *Session) State() State           { return s.state }
func (s *Session) Cursor() int            { return s.cursor }
func (s *Session) CorrectCount() int      { return s.correct }
func (s *Session) BatchSize() int         { return len(s.batch) }
func (s *Session) ErrorMessage() string   { return s.errorMsg }

// CurrentQuestion returns the question at the cursor while presenting.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.state != StatePresenting || s.cursor >= len(s.batch) {
		return Question{}, false
	}
	return s.batch[s.cursor], true
}

// Result returns the unlock decision once the session is complete.
func (s *Session) Result() (*Result, bool) {
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}
