package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	StartSession(ctx context.Context, input study.StartSessionInput) (study.StartResult, error)
	SubmitAnswer(ctx context.Context, input study.SubmitAnswerInput) (study.AnswerResult, error)
	GetActiveSession(ctx context.Context) (domain.StudySession, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	PauseSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	ResumeSession(ctx context.Context, sessionID uuid.UUID) (domain.StudySession, error)
	ResetSession(ctx context.Context, sessionID uuid.UUID) (study.StartResult, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) (study.EndResult, error)
	GetAchievements(ctx context.Context) ([]domain.Achievement, error)
}

// StudyHandler serves the study session and achievement endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type startSessionRequest struct {
	Mode             string `json:"mode"`
	GoalCount        int    `json:"goalCount"`
	TimeLimitSeconds *int   `json:"timeLimitSeconds"`
}

type startSessionResponse struct {
	SessionID     string  `json:"sessionId"`
	Mode          string  `json:"mode"`
	GoalCount     int     `json:"goalCount"`
	QueueLength   int     `json:"queueLength"`
	CurrentWordID *string `json:"currentWordId,omitempty"`
	Truncated     bool    `json:"truncated"`
}

type submitAnswerRequest struct {
	WordID         string `json:"wordId"`
	Correct        bool   `json:"correct"`
	ResponseTimeMs *int   `json:"responseTimeMs"`
}

type progressResponse struct {
	SessionID     string  `json:"sessionId"`
	Status        string  `json:"status"`
	WordsReviewed int     `json:"wordsReviewed"`
	WordsCorrect  int     `json:"wordsCorrect"`
	Accuracy      float64 `json:"accuracy"`
	GoalCount     int     `json:"goalCount"`
	Remaining     int     `json:"remaining"`
	CurrentWordID *string `json:"currentWordId,omitempty"`
}

type answerResponse struct {
	Progress        progressResponse `json:"progress"`
	Mastery         string           `json:"mastery"`
	LeveledUp       bool             `json:"leveledUp"`
	NewAchievements []string         `json:"newAchievements,omitempty"`
}

type achievementResponse struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Start handles POST /api/study/sessions.
func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.StartSession(r.Context(), study.StartSessionInput{
		Mode:             domain.StudyMode(req.Mode),
		GoalCount:        req.GoalCount,
		TimeLimitSeconds: req.TimeLimitSeconds,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStartResponse(result))
}

// Active handles GET /api/study/sessions/active.
func (h *StudyHandler) Active(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetActiveSession(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(session))
}

// SubmitAnswer handles POST /api/study/sessions/{id}/answers.
func (h *StudyHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	result, err := h.svc.SubmitAnswer(r.Context(), study.SubmitAnswerInput{
		SessionID:      sessionID,
		WordID:         wordID,
		Correct:        req.Correct,
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := answerResponse{
		Progress:  toProgressResponse(result.Session),
		Mastery:   result.Outcome.Mastery.String(),
		LeveledUp: result.Outcome.LeveledUp,
	}
	for _, typ := range result.NewAchievements {
		resp.NewAchievements = append(resp.NewAchievements, typ.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

// Pause handles POST /api/study/sessions/{id}/pause.
func (h *StudyHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.PauseSession)
}

// Resume handles POST /api/study/sessions/{id}/resume.
func (h *StudyHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ResumeSession)
}

func (h *StudyHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (domain.StudySession, error)) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := op(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(session))
}

// Reset handles POST /api/study/sessions/{id}/reset.
func (h *StudyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	result, err := h.svc.ResetSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(result.Session))
}

// End handles POST /api/study/sessions/{id}/end.
func (h *StudyHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	result, err := h.svc.EndSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := struct {
		Progress        progressResponse `json:"progress"`
		NewAchievements []string         `json:"newAchievements,omitempty"`
	}{Progress: toProgressResponse(result.Session)}
	for _, typ := range result.NewAchievements {
		resp.NewAchievements = append(resp.NewAchievements, typ.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

// Progress handles GET /api/study/sessions/{id}/progress.
func (h *StudyHandler) Progress(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	session, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(session))
}

// Achievements handles GET /api/achievements.
func (h *StudyHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	earned, err := h.svc.GetAchievements(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]achievementResponse, 0, len(earned))
	for _, a := range earned {
		info := a.Type.Info()
		resp = append(resp, achievementResponse{
			Type:        a.Type.String(),
			Name:        info.Name,
			Description: info.Description,
			Points:      info.Points,
			EarnedAt:    a.EarnedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func toStartResponse(result study.StartResult) startSessionResponse {
	resp := startSessionResponse{
		SessionID:   result.Session.ID.String(),
		Mode:        result.Session.Mode.String(),
		GoalCount:   result.Session.GoalCount,
		QueueLength: len(result.Session.Queue),
		Truncated:   result.Truncated,
	}
	if wordID, ok := result.Session.CurrentWord(); ok {
		id := wordID.String()
		resp.CurrentWordID = &id
	}
	return resp
}

func toProgressResponse(session domain.StudySession) progressResponse {
	p := study.ProgressOf(session)
	resp := progressResponse{
		SessionID:     p.SessionID.String(),
		Status:        p.Status.String(),
		WordsReviewed: p.WordsReviewed,
		WordsCorrect:  p.WordsCorrect,
		Accuracy:      p.Accuracy,
		GoalCount:     p.GoalCount,
		Remaining:     p.Remaining,
	}
	if wordID, ok := session.CurrentWord(); ok && !session.IsTerminal() {
		id := wordID.String()
		resp.CurrentWordID = &id
	}
	return resp
}
