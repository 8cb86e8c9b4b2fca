package document

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/{id}/toggle_goal_related", h.ToggleGoalRelated)
	r.Post("/{id}/edit_category", h.EditCategory)
	r.Put("/{id}/win_criteria", h.UpdateWinCriteria)
	r.Post("/{id}/result", h.RecordResult)
	r.Post("/{id}/objectives", h.AddObjective)
	r.Get("/{id}/objectives_tree", h.ObjectivesTree)

	return r
}
