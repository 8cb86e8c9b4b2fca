package studymode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/studymode"
	"github.com/ducnmm/studyvault/internal/user"
	util "github.com/ducnmm/studyvault/internal/utils"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(u *user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*user.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) First() (*user.User, error) {
	for _, u := range r.users {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *user.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeDocRepo struct {
	docs []*document.Document
}

func (r *fakeDocRepo) Create(d *document.Document) error              { return nil }
func (r *fakeDocRepo) FindByID(id uuid.UUID) (*document.Document, error) { return nil, nil }
func (r *fakeDocRepo) ListAll() ([]*document.Document, error)         { return r.docs, nil }
func (r *fakeDocRepo) ListGoalRelated(goalRelated bool) ([]*document.Document, error) {
	return r.docs, nil
}
func (r *fakeDocRepo) ListWithSummary() ([]*document.Document, error) { return r.docs, nil }
func (r *fakeDocRepo) ListWithContentExcluding(excluded []uuid.UUID) ([]*document.Document, error) {
	return r.docs, nil
}
func (r *fakeDocRepo) Update(d *document.Document) error { return nil }
func (r *fakeDocRepo) Delete(id uuid.UUID) error         { return nil }

func TestActivate(t *testing.T) {
	u := &user.User{ID: uuid.New(), Username: "demo_user"}
	repo := newFakeUserRepo(u)
	service := studymode.NewService(repo, &fakeDocRepo{})

	t.Run("ValidDuration", func(t *testing.T) {
		updated, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{
			Duration:  5,
			Keywords:  "golang, algorithms",
			Intensity: "x2",
		})
		if err != nil {
			t.Fatalf("Activate failed: %v", err)
		}
		if !updated.ShortTermModeActive {
			t.Error("activation should set the active flag")
		}
		if updated.ShortTermModeEndDate == nil {
			t.Fatal("activation should set an end date")
		}
		want := util.Today().AddDays(5)
		if !updated.ShortTermModeEndDate.Equal(want) {
			t.Errorf("end date should be today plus the duration, got %v", updated.ShortTermModeEndDate)
		}
		if updated.ShortTermModeLastUsed == nil || !updated.ShortTermModeLastUsed.Equal(util.Today()) {
			t.Error("activation should stamp the last-used date")
		}
		if updated.ShortTermModeIntensity != "x2" {
			t.Errorf("intensity not stored, got %q", updated.ShortTermModeIntensity)
		}
	})

	t.Run("DurationBounds", func(t *testing.T) {
		for _, duration := range []int{0, -1, 8, 100} {
			_, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{Duration: duration})
			if !errors.Is(err, studymode.ErrInvalidDuration) {
				t.Errorf("duration %d should be rejected, got %v", duration, err)
			}
		}
		for _, duration := range []int{1, 7} {
			if _, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{Duration: duration}); err != nil {
				t.Errorf("duration %d should be accepted, got %v", duration, err)
			}
		}
	})

	t.Run("UnknownIntensityFallsBack", func(t *testing.T) {
		updated, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{
			Duration:  3,
			Intensity: "x9",
		})
		if err != nil {
			t.Fatalf("Activate failed: %v", err)
		}
		if updated.ShortTermModeIntensity != "x1" {
			t.Errorf("unknown intensity should fall back to x1, got %q", updated.ShortTermModeIntensity)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := service.Activate(context.Background(), uuid.New(), studymode.ActivateDTO{Duration: 3})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDeactivateKeepsConfiguration(t *testing.T) {
	u := &user.User{ID: uuid.New(), Username: "demo_user"}
	repo := newFakeUserRepo(u)
	service := studymode.NewService(repo, &fakeDocRepo{})

	if _, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{
		Duration:  4,
		Keywords:  "ielts",
		Intensity: "x3",
	}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	updated, err := service.Deactivate(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if updated.ShortTermModeActive {
		t.Error("deactivation should clear the active flag")
	}
	if updated.ShortTermModeFocusKeywords != "ielts" || updated.ShortTermModeIntensity != "x3" {
		t.Error("deactivation should keep the last configuration")
	}
}

func TestTimeline(t *testing.T) {
	docs := &fakeDocRepo{docs: planDocs()}

	t.Run("InactiveUser", func(t *testing.T) {
		u := &user.User{ID: uuid.New()}
		service := studymode.NewService(newFakeUserRepo(u), docs)

		timeline, err := service.Timeline(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("Timeline failed: %v", err)
		}
		if timeline.Active {
			t.Error("inactive mode should report active=false")
		}
		if len(timeline.Plan) != 0 {
			t.Errorf("inactive mode should have an empty plan, got %d lines", len(timeline.Plan))
		}
	})

	t.Run("ActiveWindow", func(t *testing.T) {
		u := &user.User{ID: uuid.New()}
		service := studymode.NewService(newFakeUserRepo(u), docs)
		if _, err := service.Activate(context.Background(), u.ID, studymode.ActivateDTO{
			Duration:  3,
			Keywords:  "golang",
			Intensity: "x1",
		}); err != nil {
			t.Fatalf("Activate failed: %v", err)
		}

		timeline, err := service.Timeline(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("Timeline failed: %v", err)
		}
		if !timeline.Active {
			t.Fatal("active mode should report active=true")
		}
		if timeline.DaysRemaining != 3 {
			t.Errorf("expected 3 days remaining right after activation, got %d", timeline.DaysRemaining)
		}
		if len(timeline.Plan) != 3 {
			t.Errorf("expected a plan line per remaining day, got %d", len(timeline.Plan))
		}
	})

	t.Run("ExpiredWindow", func(t *testing.T) {
		past := util.NewDateOnly(mustDate(t, "2020-01-05"))
		u := &user.User{
			ID:                   uuid.New(),
			ShortTermModeActive:  true,
			ShortTermModeEndDate: &past,
		}
		service := studymode.NewService(newFakeUserRepo(u), docs)

		timeline, err := service.Timeline(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("Timeline failed: %v", err)
		}
		if timeline.Active {
			t.Error("an expired window should report active=false")
		}
	})
}
