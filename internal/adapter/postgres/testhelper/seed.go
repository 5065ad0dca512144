package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// testPasswordHash is a syntactically valid bcrypt hash; repository tests
// never verify passwords, so the plaintext does not matter.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email and username.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "learner-" + suffix + "@example.com",
		Username:     "learner-" + suffix,
		PasswordHash: testPasswordHash,
		Role:         domain.UserRoleUser,
		Name:         "Learner " + suffix,
		AvatarColor:  domain.DefaultAvatarColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, role, name, avatar_color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.Role.String(),
		user.Name, user.AvatarColor, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWord inserts a word row. Zero-valued fields get sensible defaults:
// a unique text, part of speech noun, medium difficulty, empty tags and
// current timestamps. UserID is taken as given, so a nil UserID seeds a
// base catalog word. Returns the word as stored.
func SeedWord(t *testing.T, pool *pgxpool.Pool, w domain.Word) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.Text == "" {
		w.Text = "word-" + suffix
	}
	w.TextNormalized = domain.NormalizeText(w.Text)
	if w.PartOfSpeech == "" {
		w.PartOfSpeech = domain.PartOfSpeechNoun
	}
	if w.Definition == "" {
		w.Definition = "definition " + suffix
	}
	if w.Difficulty == "" {
		w.Difficulty = domain.DifficultyMedium
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = w.CreatedAt
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, text, text_normalized, part_of_speech, definition, example,
			difficulty, times_reviewed, times_correct, last_reviewed_at, is_favorite, is_hidden,
			tags, base_word_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		w.ID, w.UserID, w.Text, w.TextNormalized, w.PartOfSpeech.String(), w.Definition, w.Example,
		w.Difficulty.String(), w.TimesReviewed, w.TimesCorrect, w.LastReviewedAt, w.IsFavorite,
		w.IsHidden, w.Tags, w.BaseWordID, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return w
}

// SeedWords inserts n reviewable words for the user with staggered
// creation times (one second apart, oldest first) so insertion order is
// unambiguous. Returns the words in creation order.
func SeedWords(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, n int) []domain.Word {
	t.Helper()

	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Duration(n) * time.Second)
	words := make([]domain.Word, 0, n)
	for i := 0; i < n; i++ {
		uid := userID
		words = append(words, SeedWord(t, pool, domain.Word{
			UserID:    &uid,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	return words
}

// SeedSession inserts a study session row. Zero-valued fields get
// defaults: mode new, goal 10, status active, empty queue and current
// timestamps. Returns the session as stored.
func SeedSession(t *testing.T, pool *pgxpool.Pool, s domain.StudySession) domain.StudySession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Mode == "" {
		s.Mode = domain.StudyModeNew
	}
	if s.GoalCount == 0 {
		s.GoalCount = 10
	}
	if s.Status == "" {
		s.Status = domain.SessionStatusActive
	}
	if s.Queue == nil {
		s.Queue = []uuid.UUID{}
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = now
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = s.StartedAt
	}

	queue, err := json.Marshal(s.Queue)
	if err != nil {
		t.Fatalf("testhelper: SeedSession marshal queue: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO study_sessions (id, user_id, mode, goal_count, time_limit_seconds, status,
			words_reviewed, words_correct, queue, started_at, ended_at, reset_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.ID, s.UserID, s.Mode.String(), s.GoalCount, s.TimeLimitSeconds, s.Status.String(),
		s.WordsReviewed, s.WordsCorrect, queue, s.StartedAt, s.EndedAt, s.ResetAt, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session: %v", err)
	}

	return s
}

// SeedRecord inserts a session word record. Zero-valued fields get
// defaults: attempt index 1 and the current answer time.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, rec domain.SessionWordRecord) domain.SessionWordRecord {
	t.Helper()
	ctx := context.Background()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.AttemptIndex == 0 {
		rec.AttemptIndex = 1
	}
	if rec.AnsweredAt.IsZero() {
		rec.AnsweredAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO session_word_records (id, session_id, word_id, was_correct, response_time_ms, attempt_index, answered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.SessionID, rec.WordID, rec.WasCorrect, rec.ResponseTimeMs, rec.AttemptIndex, rec.AnsweredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert record: %v", err)
	}

	return rec
}

// SeedAchievement inserts an earned achievement for the user.
func SeedAchievement(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, typ domain.AchievementType) domain.Achievement {
	t.Helper()
	ctx := context.Background()

	a := domain.Achievement{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     typ,
		EarnedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO achievements (id, user_id, type, earned_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.UserID, a.Type.String(), a.EarnedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAchievement insert achievement: %v", err)
	}

	return a
}
