package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	util "github.com/ducnmm/studyvault/internal/utils"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`

	UltimateGoal        string `gorm:"type:text" json:"ultimate_goal,omitempty"`
	RoleModelCharacter  string `gorm:"size:100" json:"role_model_character,omitempty"`
	WorkspaceVibe       string `gorm:"size:100;default:Study" json:"workspace_vibe,omitempty"`
	WorkspaceColorTheme string `gorm:"size:50;default:blue" json:"workspace_color_theme,omitempty"`
	SelectedAvatar      string `gorm:"size:100" json:"selected_avatar,omitempty"`

	ShortTermModeActive        bool           `gorm:"not null;default:false" json:"short_term_mode_active"`
	ShortTermModeEndDate       *util.DateOnly `gorm:"type:date" json:"short_term_mode_end_date,omitempty"`
	ShortTermModeFocusKeywords string         `gorm:"type:text" json:"short_term_mode_focus_keywords,omitempty"`
	ShortTermModeIntensity     string         `gorm:"size:10" json:"short_term_mode_intensity,omitempty"`
	ShortTermModeLastUsed      *util.DateOnly `gorm:"type:date" json:"short_term_mode_last_used,omitempty"`

	SpecificStudyGoal          string         `gorm:"type:text" json:"specific_study_goal,omitempty"`
	PreferredContentTypes      datatypes.JSON `gorm:"type:jsonb" json:"preferred_content_types,omitempty"`
	ExpectedCompletionTime     string         `gorm:"size:50" json:"expected_completion_time,omitempty"`
	PersonalLearningChallenges datatypes.JSON `gorm:"type:jsonb" json:"personal_learning_challenges,omitempty"`
	StudyvaultExpectations     datatypes.JSON `gorm:"type:jsonb" json:"studyvault_expectations,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
