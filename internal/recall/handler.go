package recall

import (
	"net/http"

	"github.com/ducnmm/studyvault/internal/config"
)

type Handler struct {
	service RecallService
}

func NewHandler(service RecallService) *Handler {
	return &Handler{service: service}
}

// GetRecallData always answers 200 with a JSON array; an unfillable batch
// carries a single error-typed item instead of a failure status.
func (h *Handler) GetRecallData(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	items, err := h.service.BuildBatch(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build recall batch")
		config.JSONError(w, http.StatusInternalServerError, "server error while building questions")
		return
	}

	config.JSON(w, http.StatusOK, items)
}
