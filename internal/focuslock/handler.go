package focuslock

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
)

type Handler struct {
	gate *Gate
}

func NewHandler(gate *Gate) *Handler {
	return &Handler{gate: gate}
}

type sessionSnapshot struct {
	ID           uuid.UUID     `json:"id"`
	Trigger      TriggerReason `json:"trigger"`
	State        State         `json:"state"`
	Title        string        `json:"title"`
	Cursor       int           `json:"cursor"`
	CorrectCount int           `json:"correct_count"`
	BatchSize    int           `json:"batch_size"`
	Question     *Question     `json:"question,omitempty"`
	Message      string        `json:"message,omitempty"`
	Result       *resultDTO    `json:"result,omitempty"`
}

type resultDTO struct {
	Unlocked     bool  `json:"unlocked"`
	Correct      int   `json:"correct"`
	Total        int   `json:"total"`
	CloseAfterMs int64 `json:"close_after_ms"`
}

func snapshot(s *Session) *sessionSnapshot {
	snap := &sessionSnapshot{
		ID:           s.ID(),
		Trigger:      s.Trigger(),
		State:        s.State(),
		Cursor:       s.Cursor(),
		CorrectCount: s.CorrectCount(),
		BatchSize:    s.BatchSize(),
	}

	switch s.State() {
	case StateLoading:
		snap.Title = "Unlock the workspace"
		snap.Message = "Loading the question batch..."
	case StatePresenting:
		snap.Title = fmt.Sprintf("Unlock (Question %d/%d)", s.Cursor()+1, s.BatchSize())
		if q, ok := s.CurrentQuestion(); ok {
			snap.Question = &q
		}
	case StateComplete:
		snap.Title = "Unlock results"
		if result, ok := s.Result(); ok {
			snap.Result = toResultDTO(result)
			if result.Unlocked {
				snap.Message = fmt.Sprintf("Great! You answered %d/%d correctly. Unlocked!", result.Correct, result.Total)
			} else {
				snap.Message = fmt.Sprintf("You answered %d/%d correctly. At least %d correct answers are needed to unlock.", result.Correct, result.Total, MinCorrectToUnlock)
			}
		}
	case StateErrored:
		snap.Title = "Unlock the workspace"
		snap.Message = s.ErrorMessage()
	}
	return snap
}

func toResultDTO(result *Result) *resultDTO {
	return &resultDTO{
		Unlocked:     result.Unlocked,
		Correct:      result.Correct,
		Total:        result.Total,
		CloseAfterMs: result.CloseAfter.Milliseconds(),
	}
}

func (h *Handler) OpenSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	trigger := TriggerManual
	if r.Body != nil && r.ContentLength != 0 {
		var payload struct {
			Trigger TriggerReason `json:"trigger"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if payload.Trigger == TriggerIdle {
			trigger = TriggerIdle
		}
	}

	s, err := h.gate.Open(r.Context(), trigger)
	if err != nil {
		if errors.Is(err, ErrGateOpen) {
			config.JSONError(w, http.StatusConflict, "gate already open")
			return
		}
		if errors.Is(err, ErrSessionDismissed) {
			config.JSONError(w, http.StatusGone, "session dismissed")
			return
		}
		log.WithError(err).Error("Failed to open focus-lock session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.WithField("trigger", string(trigger)).Info("Focus-lock session opened")
	config.JSON(w, http.StatusCreated, snapshot(s))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s, ok := h.gate.Get(id)
	if !ok {
		config.JSONError(w, http.StatusNotFound, "session not found")
		return
	}

	config.JSON(w, http.StatusOK, snapshot(s))
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, result, err := h.gate.Submit(id, payload.Answer)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			config.JSONError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, ErrSessionComplete), errors.Is(err, ErrNotPresenting):
			config.JSONError(w, http.StatusConflict, err.Error())
		default:
			log.WithError(err).Error("Failed to submit answer")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := map[string]interface{}{
		"correct":           res.Correct,
		"correct_answer":    res.CorrectAnswer,
		"cursor":            res.Cursor,
		"state":             res.State,
		"feedback_delay_ms": FeedbackDelay.Milliseconds(),
	}
	if result != nil {
		response["result"] = toResultDTO(result)
	}
	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) DismissSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.gate.Close(id); err != nil {
		config.JSONError(w, http.StatusNotFound, "session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Activity is the interaction ping that rearms the idle timer.
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	h.gate.Activity()
	w.WriteHeader(http.StatusNoContent)
}

// Overlay reports whether another dialog is covering the workspace; idle
// time spent inside it does not open the gate.
func (h *Handler) Overlay(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Open bool `json:"open"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.gate.SetOverlayOpen(payload.Open)
	w.WriteHeader(http.StatusNoContent)
}
