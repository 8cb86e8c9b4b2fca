package workspace

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/document"
)

type Handler struct {
	service WorkspaceService
}

func NewHandler(service WorkspaceService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	tree, err := h.service.Tree(r.Context(), docID)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document not found")
			return
		}
		log.WithError(err).Error("Failed to load workspace tree")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, tree)
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	var dto CreateItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.service.CreateItem(r.Context(), docID, dto)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrDocumentNotFound):
			config.JSONError(w, http.StatusNotFound, "document not found")
		case errors.Is(err, ErrEmptyTitle):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to create workspace item")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":        item.ID,
		"title":     item.Title,
		"content":   item.Content,
		"order":     item.Order,
		"parent_id": item.ParentID,
		"children":  []*TreeNode{},
	})
}

func (h *Handler) SaveUserContent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var payload struct {
		UserContent string `json:"user_content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := h.service.SaveUserContent(r.Context(), itemID, payload.UserContent); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			config.JSONError(w, http.StatusNotFound, "workspace item not found")
			return
		}
		log.WithError(err).Error("Failed to save workspace item content")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "saved"})
}

func (h *Handler) AddRelation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	var dto AddRelationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rel, err := h.service.AddRelation(r.Context(), docID, dto)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrDocumentNotFound):
			config.JSONError(w, http.StatusNotFound, "document not found")
		case errors.Is(err, ErrRelationOutside):
			config.JSONError(w, http.StatusBadRequest, err.Error())
		default:
			log.WithError(err).Error("Failed to create workspace relation")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "relation created",
		"relation_id": rel.ID,
	})
}

func (h *Handler) GetGraph(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	docID, err := uuid.Parse(chi.URLParam(r, "docID"))
	if err != nil {
		http.Error(w, "invalid document id", http.StatusBadRequest)
		return
	}

	graph, err := h.service.Graph(r.Context(), docID)
	if err != nil {
		if errors.Is(err, document.ErrDocumentNotFound) {
			config.JSONError(w, http.StatusNotFound, "document not found")
			return
		}
		log.WithError(err).Error("Failed to render workspace graph")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"graph": graph})
}
