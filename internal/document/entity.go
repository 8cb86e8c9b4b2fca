package document

import (
	"time"

	"github.com/google/uuid"

	util "github.com/ducnmm/studyvault/internal/utils"
)

type Document struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Filename           string     `gorm:"size:200;not null" json:"filename"`
	Filepath           string     `gorm:"size:300;uniqueIndex;not null" json:"filepath"`
	Category           string     `gorm:"size:100" json:"category,omitempty"`
	UploadedDate       time.Time  `gorm:"autoCreateTime" json:"uploaded_date"`
	LastViewedDate     *time.Time `json:"last_viewed_date,omitempty"`
	DocType            string     `gorm:"size:20;not null;default:file" json:"doc_type"`
	EngagementLevel    string     `gorm:"size:50" json:"engagement_level,omitempty"`
	CustomNote         string     `gorm:"type:text" json:"custom_note,omitempty"`
	Deadline           *util.DateOnly `gorm:"type:date" json:"deadline,omitempty"`
	ExtractedContent   string     `gorm:"type:text" json:"extracted_content,omitempty"`
	UserSummary        string     `gorm:"type:text" json:"user_summary,omitempty"`
	AITopicLabel       string     `gorm:"size:100" json:"ai_topic_label,omitempty"`
	WinCriteria        string     `gorm:"type:text" json:"win_criteria_description,omitempty"`
	TargetScore        *int       `json:"target_score,omitempty"`
	ActualScore        *int       `json:"actual_score,omitempty"`
	Keywords           string     `gorm:"type:text" json:"keywords,omitempty"`
	ContextEvent       string     `gorm:"size:200" json:"context_event,omitempty"`
	IsGoalRelated      bool       `gorm:"not null;default:false" json:"is_goal_related"`
	FilenameNormalized string     `gorm:"size:200" json:"filename_normalized,omitempty"`
}
