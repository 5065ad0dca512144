package rest

import (
	"net/http"

	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/middleware"
)

// Handlers bundles the endpoint handlers the router wires up.
type Handlers struct {
	Auth   *AuthHandler
	Words  *WordsHandler
	Study  *StudyHandler
	User   *UserHandler
	Admin  *AdminHandler
	Health *HealthHandler
}

// NewRouter builds the HTTP route table and wraps the API routes with
// the given middleware chain. Health probes stay outside the chain so
// they keep answering under rate limiting.
func NewRouter(h Handlers, chain middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/auth/register", h.Auth.Register)
	api.HandleFunc("POST /api/auth/login", h.Auth.Login)
	api.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	api.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	api.HandleFunc("GET /api/me", h.User.Me)
	api.HandleFunc("PATCH /api/me", h.User.UpdateMe)
	api.HandleFunc("GET /api/me/stats", h.User.Stats)

	api.HandleFunc("GET /api/words", h.Words.List)
	api.HandleFunc("POST /api/words", h.Words.Create)
	api.HandleFunc("POST /api/words/lookup", h.Words.Lookup)
	api.HandleFunc("GET /api/words/{id}", h.Words.Get)
	api.HandleFunc("PATCH /api/words/{id}", h.Words.Update)
	api.HandleFunc("DELETE /api/words/{id}", h.Words.Delete)
	api.HandleFunc("POST /api/words/{id}/favorite", h.Words.SetFavorite)
	api.HandleFunc("POST /api/words/{id}/hide", h.Words.SetHidden)
	api.HandleFunc("POST /api/words/{id}/difficulty", h.Words.SetDifficulty)

	api.HandleFunc("GET /api/base-words", h.Words.ListBase)
	api.HandleFunc("POST /api/base-words/{id}/adopt", h.Words.AdoptBase)

	api.HandleFunc("POST /api/study/sessions", h.Study.Start)
	api.HandleFunc("GET /api/study/sessions/active", h.Study.Active)
	api.HandleFunc("POST /api/study/sessions/{id}/answers", h.Study.SubmitAnswer)
	api.HandleFunc("POST /api/study/sessions/{id}/pause", h.Study.Pause)
	api.HandleFunc("POST /api/study/sessions/{id}/resume", h.Study.Resume)
	api.HandleFunc("POST /api/study/sessions/{id}/reset", h.Study.Reset)
	api.HandleFunc("POST /api/study/sessions/{id}/end", h.Study.End)
	api.HandleFunc("GET /api/study/sessions/{id}/progress", h.Study.Progress)
	api.HandleFunc("GET /api/achievements", h.Study.Achievements)

	api.HandleFunc("GET /api/admin/stats", h.Admin.Stats)

	root := http.NewServeMux()
	root.Handle("/api/", chain(api))
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)

	return root
}
