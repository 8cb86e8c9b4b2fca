package document

import (
	"gorm.io/gorm"

	"github.com/ducnmm/studyvault/internal/user"
)

type DocumentContainer struct {
	Handler       *Handler
	Service       DocumentService
	Repo          DocumentRepository
	ObjectiveRepo ObjectiveRepository
}

func NewDocumentContainer(db *gorm.DB, userRepo user.UserRepository) *DocumentContainer {
	repo := NewRepository(db)
	objRepo := NewObjectiveRepository(db)
	service := NewService(repo, objRepo)
	handler := NewHandler(service, userRepo)

	return &DocumentContainer{
		Handler:       handler,
		Service:       service,
		Repo:          repo,
		ObjectiveRepo: objRepo,
	}
}
