package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/promisinganuj/kids-vocabulary-app/internal/service/user"
	"github.com/promisinganuj/kids-vocabulary-app/internal/transport/middleware"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	GetPlatformStats(ctx context.Context) (user.PlatformStats, error)
}

// AdminHandler serves admin-only REST endpoints. The role check runs
// here and again in the service.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type platformStatsResponse struct {
	Users             int `json:"users"`
	LearnerWords      int `json:"learnerWords"`
	BaseWords         int `json:"baseWords"`
	Sessions          int `json:"sessions"`
	SessionsCompleted int `json:"sessionsCompleted"`
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.GetPlatformStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, platformStatsResponse{
		Users:             stats.Users,
		LearnerWords:      stats.LearnerWords,
		BaseWords:         stats.BaseWords,
		Sessions:          stats.Sessions,
		SessionsCompleted: stats.SessionsCompleted,
	})
}
