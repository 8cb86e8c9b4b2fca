package user

import "github.com/google/uuid"

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileSetupDTO carries the fields of the profile setup form. The list
// fields arrive as repeated form values.
type ProfileSetupDTO struct {
	UltimateGoal               string
	RoleModelCharacter         string
	SelectedAvatar             string
	WorkspaceColorTheme        string
	SpecificStudyGoal          string
	ExpectedCompletionTime     string
	PreferredContentTypes      []string
	PersonalLearningChallenges []string
	StudyvaultExpectations     []string
}

type UserResponse struct {
	ID                  uuid.UUID `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	UltimateGoal        string    `json:"ultimate_goal,omitempty"`
	RoleModelCharacter  string    `json:"role_model_character,omitempty"`
	WorkspaceVibe       string    `json:"workspace_vibe,omitempty"`
	WorkspaceColorTheme string    `json:"workspace_color_theme,omitempty"`
	SelectedAvatar      string    `json:"selected_avatar,omitempty"`
	ShortTermModeActive bool      `json:"short_term_mode_active"`
}
