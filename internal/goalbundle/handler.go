package goalbundle

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/user"
)

type Handler struct {
	service  GoalBundleService
	userRepo user.UserRepository
}

func NewHandler(service GoalBundleService, userRepo user.UserRepository) *Handler {
	return &Handler{service: service, userRepo: userRepo}
}

// GetBundle resolves the authenticated user's role model and returns one
// bundle variant for it.
func (h *Handler) GetBundle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.userRepo.FindByID(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		config.JSONError(w, http.StatusNotFound, "user not found")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"role":    u.RoleModelCharacter,
		"columns": h.service.BundleForRole(u.RoleModelCharacter),
	})
}
