package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/user"
)

type Handler struct {
	service  DocumentService
	userRepo user.UserRepository
}

func NewHandler(service DocumentService, userRepo user.UserRepository) *Handler {
	return &Handler{service: service, userRepo: userRepo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var u *user.User
	if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
		if u, err = h.userRepo.FindByID(uuid.MustParse(claims.UserID)); err != nil {
			log.WithError(err).Error("Failed to load user for relevance check")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = TabAll
	}

	result, err := h.service.List(r.Context(), tab, u)
	if err != nil {
		log.WithError(err).Error("Failed to list documents")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"documents":   result.Documents,
		"default_tab": result.DefaultTab,
	})
}

func (h *Handler) ToggleGoalRelated(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	doc, err := h.service.ToggleGoalRelated(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document does not exist")
			return
		}
		log.WithError(err).Error("Failed to toggle goal-related status")
		config.JSONError(w, http.StatusInternalServerError, "server error while updating status")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":         "update successful",
		"is_goal_related": doc.IsGoalRelated,
		"doc_id":          doc.ID,
	})
}

func (h *Handler) EditCategory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	newCategory := r.PostFormValue("new_category")

	doc, err := h.service.EditCategory(r.Context(), id, newCategory)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) || errors.Is(err, ErrInvalidCategory) {
			http.Error(w, "invalid document or category", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to edit category")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "category updated",
		"category": doc.Category,
		"doc_id":   doc.ID,
	})
}

// parseScore coerces a decoded JSON value into an optional score. Nil and
// the empty string clear the score; numbers and numeric strings are
// accepted, anything else is rejected.
func parseScore(v interface{}) (*int, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil, true
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, false
		}
		return &n, true
	case float64:
		n := int(val)
		return &n, true
	default:
		return nil, false
	}
}

func (h *Handler) UpdateWinCriteria(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Description *string     `json:"description"`
		TargetScore interface{} `json:"target_score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	target, ok := parseScore(payload.TargetScore)
	if !ok {
		config.JSONError(w, http.StatusBadRequest, "target score must be a number")
		return
	}

	doc, err := h.service.SetWinCriteria(r.Context(), id, payload.Description, target)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document not found")
			return
		}
		log.WithError(err).Error("Failed to update win criteria")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":                  "win criteria updated",
		"win_criteria_description": doc.WinCriteria,
		"target_score":             doc.TargetScore,
	})
}

func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	raw, present := payload["actual_score"]
	if !present {
		config.JSONError(w, http.StatusBadRequest, "actual_score is required")
		return
	}
	actual, ok := parseScore(raw)
	if !ok {
		config.JSONError(w, http.StatusBadRequest, "actual score must be a number")
		return
	}

	doc, err := h.service.RecordResult(r.Context(), id, actual)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document not found")
			return
		}
		log.WithError(err).Error("Failed to record result")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":      "result recorded",
		"actual_score": doc.ActualScore,
	})
}

func (h *Handler) AddObjective(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Description string     `json:"description"`
		ParentID    *uuid.UUID `json:"parent_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.service.AddObjective(r.Context(), docID, payload.Description, payload.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			config.JSONError(w, http.StatusNotFound, "document not found")
		case errors.Is(err, ErrEmptyObjective):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to add objective")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":           o.ID,
		"description":  o.Description,
		"is_completed": o.IsCompleted,
	})
}

func (h *Handler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "objectiveID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteObjective(r.Context(), id); err != nil {
		if errors.Is(err, ErrObjectiveNotFound) {
			config.JSONError(w, http.StatusNotFound, "objective not found")
			return
		}
		log.WithError(err).Error("Failed to delete objective")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "objective deleted"})
}

func (h *Handler) ToggleObjective(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "objectiveID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := h.service.ToggleObjective(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrObjectiveNotFound) {
			config.JSONError(w, http.StatusNotFound, "objective not found")
			return
		}
		log.WithError(err).Error("Failed to toggle objective")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"is_completed": o.IsCompleted})
}

func (h *Handler) ObjectivesTree(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tree, err := h.service.ObjectivesTree(r.Context(), docID)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document not found")
			return
		}
		log.WithError(err).Error("Failed to load objectives tree")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, tree)
}

// TokenizeContent reports the category keywords present in a piece of text.
func (h *Handler) TokenizeContent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var payload struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Text == "" {
		config.JSONError(w, http.StatusBadRequest, "no content to analyze")
		return
	}
	if payload.Category == "" {
		payload.Category = DefaultCategory
	}

	keywords := ExtractCategoryKeywords(payload.Text, payload.Category)
	if len(keywords) == 0 {
		config.JSON(w, http.StatusOK, map[string][]string{
			"keywords": {"No domain keywords found."},
		})
		return
	}

	config.JSON(w, http.StatusOK, map[string][]string{"keywords": keywords})
}
