package focuslock

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/sessions", h.OpenSession)
	r.Get("/sessions/{id}", h.GetSession)
	r.Post("/sessions/{id}/answers", h.SubmitAnswer)
	r.Delete("/sessions/{id}", h.DismissSession)
	r.Post("/activity", h.Activity)
	r.Post("/overlay", h.Overlay)

	return r
}
