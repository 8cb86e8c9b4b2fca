package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ducnmm/studyvault/internal/auth"
	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/focuslock"
	"github.com/ducnmm/studyvault/internal/goalbundle"
	"github.com/ducnmm/studyvault/internal/middlewares"
	"github.com/ducnmm/studyvault/internal/recall"
	"github.com/ducnmm/studyvault/internal/studymode"
	"github.com/ducnmm/studyvault/internal/user"
	"github.com/ducnmm/studyvault/internal/workspace"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	DocumentHandler   *document.Handler
	RecallHandler     *recall.Handler
	StudyModeHandler  *studymode.Handler
	FocusLockHandler  *focuslock.Handler
	WorkspaceHandler  *workspace.Handler
	GoalBundleHandler *goalbundle.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/document", document.Routes(cfg.DocumentHandler))
		r.Mount("/get_recall_data", recall.Routes(cfg.RecallHandler))
		r.Mount("/focus-lock", focuslock.Routes(cfg.FocusLockHandler))
		r.Mount("/goal_bundles", goalbundle.Routes(cfg.GoalBundleHandler))

		// Paths kept at the root to match the frontend's fetch calls.
		r.Post("/activate_short_term_mode", cfg.StudyModeHandler.Activate)
		r.Post("/deactivate_short_term_mode", cfg.StudyModeHandler.Deactivate)
		r.Get("/study_timeline", cfg.StudyModeHandler.Timeline)
		r.Post("/tokenize_content", cfg.DocumentHandler.TokenizeContent)
		r.Delete("/objective/{objectiveID}", cfg.DocumentHandler.DeleteObjective)
		r.Put("/objective/{objectiveID}/toggle", cfg.DocumentHandler.ToggleObjective)

		r.Get("/document/{docID}/workspace", cfg.WorkspaceHandler.GetTree)
		r.Get("/document/{docID}/workspace/graph", cfg.WorkspaceHandler.GetGraph)
		r.Post("/document/{docID}/workspace_items", cfg.WorkspaceHandler.CreateItem)
		r.Post("/document/{docID}/relations", cfg.WorkspaceHandler.AddRelation)
		r.Post("/workspace_item/{itemID}/user_content", cfg.WorkspaceHandler.SaveUserContent)
	})
	return r
}
