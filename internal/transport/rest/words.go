package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
	"github.com/promisinganuj/kids-vocabulary-app/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by WordsHandler.
type vocabularyService interface {
	CreateWord(ctx context.Context, input vocabulary.CreateWordInput) (domain.Word, error)
	UpdateWord(ctx context.Context, input vocabulary.UpdateWordInput) (domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	GetWord(ctx context.Context, wordID uuid.UUID) (domain.Word, error)
	ListWords(ctx context.Context, input vocabulary.ListWordsInput) (vocabulary.ListResult, error)
	SetFavorite(ctx context.Context, wordID uuid.UUID, favorite bool) error
	SetHidden(ctx context.Context, wordID uuid.UUID, hidden bool) error
	SetDifficulty(ctx context.Context, input vocabulary.SetDifficultyInput) error
	ListBaseWords(ctx context.Context, input vocabulary.ListBaseWordsInput) (vocabulary.ListResult, error)
	AdoptBaseWord(ctx context.Context, baseWordID uuid.UUID) (domain.Word, error)
	LookupWord(ctx context.Context, word string) (*provider.LookupResult, error)
}

// WordsHandler serves the word library and base catalog endpoints.
type WordsHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc vocabularyService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordResponse struct {
	ID             string     `json:"id"`
	Text           string     `json:"text"`
	PartOfSpeech   string     `json:"partOfSpeech"`
	Definition     string     `json:"definition"`
	Example        string     `json:"example,omitempty"`
	Difficulty     string     `json:"difficulty"`
	Mastery        string     `json:"mastery"`
	TimesReviewed  int        `json:"timesReviewed"`
	TimesCorrect   int        `json:"timesCorrect"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	IsFavorite     bool       `json:"isFavorite"`
	IsHidden       bool       `json:"isHidden"`
	Tags           []string   `json:"tags,omitempty"`
	BaseWordID     *string    `json:"baseWordId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type wordListResponse struct {
	Words       []wordResponse `json:"words"`
	Total       int            `json:"total"`
	HasNextPage bool           `json:"hasNextPage"`
}

type createWordRequest struct {
	Text         string   `json:"text"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags"`
}

type updateWordRequest struct {
	Text         *string  `json:"text"`
	PartOfSpeech *string  `json:"partOfSpeech"`
	Definition   *string  `json:"definition"`
	Example      *string  `json:"example"`
	Tags         []string `json:"tags"`
}

// List handles GET /api/words.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	input := vocabulary.ListWordsInput{
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
	}

	q := r.URL.Query()
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("difficulty"); v != "" {
		d := domain.Difficulty(v)
		input.Difficulty = &d
	}
	if v := q.Get("mastery"); v != "" {
		m := domain.MasteryLevel(v)
		input.Mastery = &m
	}
	if v := q.Get("favorite"); v != "" {
		fav := v == "true"
		input.Favorite = &fav
	}
	if v := q.Get("partOfSpeech"); v != "" {
		pos := domain.PartOfSpeech(v)
		input.PartOfSpeech = &pos
	}
	if v := q.Get("tag"); v != "" {
		input.Tag = &v
	}
	input.IncludeHidden = q.Get("includeHidden") == "true"

	result, err := h.svc.ListWords(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(result))
}

// Create handles POST /api/words.
func (h *WordsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	word, err := h.svc.CreateWord(r.Context(), vocabulary.CreateWordInput{
		Text:         req.Text,
		PartOfSpeech: domain.PartOfSpeech(req.PartOfSpeech),
		Definition:   req.Definition,
		Example:      req.Example,
		Difficulty:   domain.Difficulty(req.Difficulty),
		Tags:         req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

// Get handles GET /api/words/{id}.
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Update handles PATCH /api/words/{id}.
func (h *WordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vocabulary.UpdateWordInput{
		WordID:     id,
		Text:       req.Text,
		Definition: req.Definition,
		Example:    req.Example,
		Tags:       req.Tags,
	}
	if req.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(*req.PartOfSpeech)
		input.PartOfSpeech = &pos
	}

	word, err := h.svc.UpdateWord(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetFavorite handles POST /api/words/{id}/favorite.
func (h *WordsHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var body struct {
		Favorite bool `json:"favorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetFavorite(r.Context(), id, body.Favorite); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.respondWord(w, r, id)
}

// SetHidden handles POST /api/words/{id}/hide.
func (h *WordsHandler) SetHidden(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var body struct {
		Hidden bool `json:"hidden"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetHidden(r.Context(), id, body.Hidden); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.respondWord(w, r, id)
}

// respondWord fetches the word after a flag change and writes it back.
func (h *WordsHandler) respondWord(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	word, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// SetDifficulty handles POST /api/words/{id}/difficulty.
func (h *WordsHandler) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var body struct {
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.SetDifficulty(r.Context(), vocabulary.SetDifficultyInput{
		WordID:     id,
		Difficulty: domain.Difficulty(body.Difficulty),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.respondWord(w, r, id)
}

// Lookup handles POST /api/words/lookup.
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.LookupWord(r.Context(), body.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Word         string   `json:"word"`
		PartOfSpeech string   `json:"partOfSpeech"`
		Definition   string   `json:"definition"`
		Example      string   `json:"example,omitempty"`
		Difficulty   string   `json:"difficulty,omitempty"`
		RelatedWords []string `json:"relatedWords,omitempty"`
	}{
		Word:         result.Word,
		PartOfSpeech: result.PartOfSpeech,
		Definition:   result.Definition,
		Example:      result.Example,
		Difficulty:   result.Difficulty,
		RelatedWords: result.RelatedWords,
	})
}

// ListBase handles GET /api/base-words.
func (h *WordsHandler) ListBase(w http.ResponseWriter, r *http.Request) {
	input := vocabulary.ListBaseWordsInput{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("difficulty"); v != "" {
		d := domain.Difficulty(v)
		input.Difficulty = &d
	}

	result, err := h.svc.ListBaseWords(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(result))
}

// AdoptBase handles POST /api/base-words/{id}/adopt.
func (h *WordsHandler) AdoptBase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	word, err := h.svc.AdoptBaseWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(word))
}

func toWordResponse(word domain.Word) wordResponse {
	resp := wordResponse{
		ID:             word.ID.String(),
		Text:           word.Text,
		PartOfSpeech:   word.PartOfSpeech.String(),
		Definition:     word.Definition,
		Example:        word.Example,
		Difficulty:     word.Difficulty.String(),
		Mastery:        word.Mastery().String(),
		TimesReviewed:  word.TimesReviewed,
		TimesCorrect:   word.TimesCorrect,
		LastReviewedAt: word.LastReviewedAt,
		IsFavorite:     word.IsFavorite,
		IsHidden:       word.IsHidden,
		Tags:           word.Tags,
		CreatedAt:      word.CreatedAt,
	}
	if word.BaseWordID != nil {
		id := word.BaseWordID.String()
		resp.BaseWordID = &id
	}
	return resp
}

func toWordListResponse(result vocabulary.ListResult) wordListResponse {
	words := make([]wordResponse, 0, len(result.Words))
	for _, word := range result.Words {
		words = append(words, toWordResponse(word))
	}
	return wordListResponse{
		Words:       words,
		Total:       result.TotalCount,
		HasNextPage: result.HasNextPage,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
