package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (domain.User, error)
	GetStats(ctx context.Context) (domain.UserStats, error)
}

// UserHandler serves profile and statistics endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	AvatarColor   string     `json:"avatarColor"`
	LearningGoals *string    `json:"learningGoals,omitempty"`
	Role          string     `json:"role"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

type updateProfileRequest struct {
	Name          *string `json:"name"`
	AvatarColor   *string `json:"avatarColor"`
	LearningGoals *string `json:"learningGoals"`
}

type statsResponse struct {
	TotalWords        int     `json:"totalWords"`
	NewWords          int     `json:"newWords"`
	LearningWords     int     `json:"learningWords"`
	MasteredWords     int     `json:"masteredWords"`
	FavoriteWords     int     `json:"favoriteWords"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	WordsReviewed     int     `json:"wordsReviewed"`
	WordsCorrect      int     `json:"wordsCorrect"`
	Accuracy          float64 `json:"accuracy"`
	StreakDays        int     `json:"streakDays"`
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PATCH /api/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:          req.Name,
		AvatarColor:   req.AvatarColor,
		LearningGoals: req.LearningGoals,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Stats handles GET /api/me/stats.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalWords:        stats.TotalWords,
		NewWords:          stats.NewWords,
		LearningWords:     stats.LearningWords,
		MasteredWords:     stats.MasteredWords,
		FavoriteWords:     stats.FavoriteWords,
		SessionsCompleted: stats.SessionsCompleted,
		WordsReviewed:     stats.WordsReviewed,
		WordsCorrect:      stats.WordsCorrect,
		Accuracy:          stats.Accuracy(),
		StreakDays:        stats.StreakDays,
	})
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Username:      u.Username,
		Name:          u.Name,
		AvatarColor:   u.AvatarColor,
		LearningGoals: u.LearningGoals,
		Role:          u.Role.String(),
		CreatedAt:     u.CreatedAt,
		LastLoginAt:   u.LastLoginAt,
	}
}
