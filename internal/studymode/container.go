package studymode

import (
	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/user"
)

type StudyModeContainer struct {
	Handler *Handler
	Service StudyModeService
}

func NewStudyModeContainer(userRepo user.UserRepository, docRepo document.DocumentRepository) *StudyModeContainer {
	service := NewService(userRepo, docRepo)
	handler := NewHandler(service)

	return &StudyModeContainer{
		Handler: handler,
		Service: service,
	}
}
