package studymode

import util "github.com/ducnmm/studyvault/internal/utils"

type ActivateDTO struct {
	Duration  int
	Keywords  string
	Intensity string
}

type TimelineResponse struct {
	Active        bool           `json:"active"`
	EndDate       *util.DateOnly `json:"end_date,omitempty"`
	DaysRemaining int            `json:"days_remaining"`
	FocusKeywords string         `json:"focus_keywords,omitempty"`
	Intensity     string         `json:"intensity,omitempty"`
	Plan          []string       `json:"plan"`
}
