package studymode

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/user"
	util "github.com/ducnmm/studyvault/internal/utils"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 7
)

var ErrInvalidDuration = errors.New("study duration must be between 1 and 7 days")

type StudyModeService interface {
	Activate(ctx context.Context, userID uuid.UUID, dto ActivateDTO) (*user.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) (*user.User, error)
	Timeline(ctx context.Context, userID uuid.UUID) (*TimelineResponse, error)
}

type studyModeService struct {
	userRepo user.UserRepository
	docRepo  document.DocumentRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(userRepo user.UserRepository, docRepo document.DocumentRepository) StudyModeService {
	return NewServiceWithRand(userRepo, docRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewServiceWithRand(userRepo user.UserRepository, docRepo document.DocumentRepository, rnd *rand.Rand) StudyModeService {
	return &studyModeService{
		userRepo: userRepo,
		docRepo:  docRepo,
		rnd:      rnd,
	}
}

// Activate turns short-term mode on for a bounded number of days. The end
// date and last-used date are recomputed on every activation.
func (s *studyModeService) Activate(ctx context.Context, userID uuid.UUID, dto ActivateDTO) (*user.User, error) {
	log := config.WithContext(ctx)

	if dto.Duration < MinDurationDays || dto.Duration > MaxDurationDays {
		return nil, ErrInvalidDuration
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	intensity := dto.Intensity
	if _, ok := intensityMultipliers[intensity]; !ok {
		intensity = "x1"
	}

	today := util.Today()
	endDate := today.AddDays(dto.Duration)

	u.ShortTermModeActive = true
	u.ShortTermModeEndDate = &endDate
	u.ShortTermModeFocusKeywords = dto.Keywords
	u.ShortTermModeIntensity = intensity
	u.ShortTermModeLastUsed = &today

	if err := s.userRepo.Update(u); err != nil {
		log.WithError(err).Error("Failed to activate short-term mode")
		return nil, err
	}

	log.WithField("duration_days", dto.Duration).Info("Short-term mode activated")
	return u, nil
}

// Deactivate clears the active flag only; the last configuration is kept so
// reactivation can suggest the previous focus.
func (s *studyModeService) Deactivate(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	log := config.WithContext(ctx)

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	u.ShortTermModeActive = false
	if err := s.userRepo.Update(u); err != nil {
		log.WithError(err).Error("Failed to deactivate short-term mode")
		return nil, err
	}

	log.Info("Short-term mode deactivated")
	return u, nil
}

// Timeline renders the day-by-day study plan for the active window.
func (s *studyModeService) Timeline(ctx context.Context, userID uuid.UUID) (*TimelineResponse, error) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrUserNotFound
	}

	if !u.ShortTermModeActive || u.ShortTermModeEndDate == nil {
		return &TimelineResponse{Active: false, Plan: []string{}}, nil
	}

	today := util.Today()
	daysRemaining := today.DaysUntil(*u.ShortTermModeEndDate)
	if daysRemaining <= 0 {
		return &TimelineResponse{
			Active:  false,
			EndDate: u.ShortTermModeEndDate,
			Plan:    []string{},
		}, nil
	}

	docs, err := s.docRepo.ListAll()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	plan := GeneratePlan(docs, u.ShortTermModeFocusKeywords, u.ShortTermModeIntensity, daysRemaining, today, s.rnd)
	s.mu.Unlock()

	return &TimelineResponse{
		Active:        true,
		EndDate:       u.ShortTermModeEndDate,
		DaysRemaining: daysRemaining,
		FocusKeywords: u.ShortTermModeFocusKeywords,
		Intensity:     u.ShortTermModeIntensity,
		Plan:          plan,
	}, nil
}
