package workspace

import (
	"gorm.io/gorm"

	"github.com/ducnmm/studyvault/internal/document"
)

type WorkspaceContainer struct {
	Handler *Handler
	Service WorkspaceService
	Repo    WorkspaceRepository
}

func NewWorkspaceContainer(db *gorm.DB, docRepo document.DocumentRepository) *WorkspaceContainer {
	repo := NewRepository(db)
	service := NewService(repo, docRepo)
	handler := NewHandler(service)

	return &WorkspaceContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
