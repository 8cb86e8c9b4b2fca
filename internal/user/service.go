package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ducnmm/studyvault/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")

type UserService interface {
	EnsureDemoUser(ctx context.Context) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	SetupProfile(ctx context.Context, id uuid.UUID, dto ProfileSetupDTO) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

// EnsureDemoUser creates the single local account the workspace runs under
// when the database is empty.
func (s *userService) EnsureDemoUser(ctx context.Context) (*User, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.First()
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	password := os.Getenv("DEMO_USER_PASSWORD")
	if password == "" {
		password = "password"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     "demo_user",
		Email:        "demo@example.com",
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create demo user")
		return nil, err
	}

	log.Info("Demo user created")
	return u, nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*User, error) {
	u, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) SetupProfile(ctx context.Context, id uuid.UUID, dto ProfileSetupDTO) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.UltimateGoal = dto.UltimateGoal
	u.RoleModelCharacter = dto.RoleModelCharacter
	u.SelectedAvatar = dto.SelectedAvatar
	u.WorkspaceColorTheme = dto.WorkspaceColorTheme
	u.SpecificStudyGoal = dto.SpecificStudyGoal
	u.ExpectedCompletionTime = dto.ExpectedCompletionTime

	if u.PreferredContentTypes, err = marshalList(dto.PreferredContentTypes); err != nil {
		return nil, err
	}
	if u.PersonalLearningChallenges, err = marshalList(dto.PersonalLearningChallenges); err != nil {
		return nil, err
	}
	if u.StudyvaultExpectations, err = marshalList(dto.StudyvaultExpectations); err != nil {
		return nil, err
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to save profile")
		return nil, err
	}

	log.Info("Profile setup saved")
	return u, nil
}

func marshalList(values []string) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return json.Marshal(values)
}
