package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/config"
)

const sessionDuration = 24 * time.Hour

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to log in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateJWT(u.ID.String(), "user", sessionDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, h.toResponse(u))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

// SetupProfile consumes the profile setup form; list inputs come as
// repeated form fields.
func (h *Handler) SetupProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.WithError(err).Error("Invalid form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	dto := ProfileSetupDTO{
		UltimateGoal:               r.PostFormValue("ultimate_goal"),
		RoleModelCharacter:         r.PostFormValue("role_model_character"),
		SelectedAvatar:             r.PostFormValue("selected_avatar"),
		WorkspaceColorTheme:        r.PostFormValue("workspace_color_theme"),
		SpecificStudyGoal:          r.PostFormValue("specific_study_goal"),
		ExpectedCompletionTime:     r.PostFormValue("expected_completion_time"),
		PreferredContentTypes:      r.PostForm["preferred_content_types"],
		PersonalLearningChallenges: r.PostForm["personal_learning_challenges"],
		StudyvaultExpectations:     r.PostForm["studyvault_expectations"],
	}

	u, err := h.service.SetupProfile(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Error("Failed to save profile setup")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "profile setup saved",
		"user":    h.toResponse(u),
	})
}

func (h *Handler) toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		UltimateGoal:        u.UltimateGoal,
		RoleModelCharacter:  u.RoleModelCharacter,
		WorkspaceVibe:       u.WorkspaceVibe,
		WorkspaceColorTheme: u.WorkspaceColorTheme,
		SelectedAvatar:      u.SelectedAvatar,
		ShortTermModeActive: u.ShortTermModeActive,
	}
}
