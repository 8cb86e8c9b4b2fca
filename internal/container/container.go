package container

import (
	"context"
	"log"
	"os"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/focuslock"
	"github.com/ducnmm/studyvault/internal/goalbundle"
	"github.com/ducnmm/studyvault/internal/recall"
	"github.com/ducnmm/studyvault/internal/studymode"
	"github.com/ducnmm/studyvault/internal/user"
	"github.com/ducnmm/studyvault/internal/workspace"
)

type Container struct {
	UserContainer       *user.UserContainer
	DocumentContainer   *document.DocumentContainer
	RecallContainer     *recall.RecallContainer
	StudyModeContainer  *studymode.StudyModeContainer
	FocusLockContainer  *focuslock.FocusLockContainer
	WorkspaceContainer  *workspace.WorkspaceContainer
	GoalBundleContainer *goalbundle.GoalBundleContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(
		&user.User{},
		&document.Document{},
		&document.LearningObjective{},
		&workspace.WorkspaceItem{},
		&workspace.WorkspaceItemRelation{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	if _, err := userContainer.Service.EnsureDemoUser(context.Background()); err != nil {
		log.Fatalf("failed to ensure demo user: %v", err)
	}

	documentContainer := document.NewDocumentContainer(config.DB, userContainer.Repo)
	recallContainer := recall.NewRecallContainer(documentContainer.Repo)
	studyModeContainer := studymode.NewStudyModeContainer(userContainer.Repo, documentContainer.Repo)
	workspaceContainer := workspace.NewWorkspaceContainer(config.DB, documentContainer.Repo)
	goalBundleContainer := goalbundle.NewGoalBundleContainer(userContainer.Repo)

	source := &recallQuestionSource{service: recallContainer.Service}
	focusLockContainer := focuslock.NewFocusLockContainer(source, focuslock.IdleTimeout)

	return &Container{
		UserContainer:       userContainer,
		DocumentContainer:   documentContainer,
		RecallContainer:     recallContainer,
		StudyModeContainer:  studyModeContainer,
		FocusLockContainer:  focusLockContainer,
		WorkspaceContainer:  workspaceContainer,
		GoalBundleContainer: goalBundleContainer,
	}
}
