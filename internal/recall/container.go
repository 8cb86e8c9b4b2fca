package recall

import "github.com/ducnmm/studyvault/internal/document"

type RecallContainer struct {
	Handler *Handler
	Service RecallService
}

func NewRecallContainer(docRepo document.DocumentRepository) *RecallContainer {
	service := NewService(docRepo)
	handler := NewHandler(service)

	return &RecallContainer{
		Handler: handler,
		Service: service,
	}
}
