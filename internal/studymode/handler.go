package studymode

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/user"
)

type Handler struct {
	service StudyModeService
}

func NewHandler(service StudyModeService) *Handler {
	return &Handler{service: service}
}

func activateFailure(w http.ResponseWriter, status int, message string) {
	config.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// Activate consumes the form-encoded activation request.
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		activateFailure(w, http.StatusBadRequest, "invalid form body")
		return
	}

	duration, err := strconv.Atoi(r.PostFormValue("study_duration"))
	if err != nil {
		activateFailure(w, http.StatusBadRequest, "study_duration must be a number of days")
		return
	}

	dto := ActivateDTO{
		Duration:  duration,
		Keywords:  r.PostFormValue("study_focus_keywords"),
		Intensity: r.PostFormValue("study_intensity"),
	}

	u, err := h.service.Activate(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDuration):
			activateFailure(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, user.ErrUserNotFound):
			activateFailure(w, http.StatusNotFound, "user not found")
		default:
			log.WithError(err).Error("Failed to activate short-term mode")
			activateFailure(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Short-term study mode is on until %s!", u.ShortTermModeEndDate.Format("2006-01-02")),
	})
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if _, err := h.service.Deactivate(r.Context(), uuid.MustParse(claims.UserID)); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			config.JSONError(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to deactivate short-term mode")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Short-term study mode deactivated.",
	})
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	timeline, err := h.service.Timeline(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			config.JSONError(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to build study timeline")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, timeline)
}
