// Package word implements the vocabulary word repository using PostgreSQL.
// Single-row operations use raw SQL; the filtered listing builds its query
// with squirrel.
package word

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/promisinganuj/kids-vocabulary-app/internal/adapter/postgres"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordColumns = `id, user_id, text, text_normalized, part_of_speech, definition, example, difficulty,
       times_reviewed, times_correct, last_reviewed_at, is_favorite, is_hidden, tags, base_word_id,
       created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO words (id, user_id, text, text_normalized, part_of_speech, definition, example, difficulty,
                   is_favorite, is_hidden, tags, base_word_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
RETURNING ` + wordColumns

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $2 AND user_id = $1`

const getByIDsSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND id = ANY($2::uuid[])`

const getByTextSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND text_normalized = $2`

const getBaseByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1 AND user_id IS NULL`

const updateSQL = `
UPDATE words
SET text = $3, text_normalized = $4, part_of_speech = $5, definition = $6,
    example = $7, difficulty = $8, tags = $9, updated_at = $10
WHERE id = $2 AND user_id = $1
RETURNING ` + wordColumns

const deleteSQL = `DELETE FROM words WHERE id = $2 AND user_id = $1`

const setFavoriteSQL = `
UPDATE words SET is_favorite = $3, updated_at = $4 WHERE id = $2 AND user_id = $1`

const setHiddenSQL = `
UPDATE words SET is_hidden = $3, updated_at = $4 WHERE id = $2 AND user_id = $1`

const setDifficultySQL = `
UPDATE words SET difficulty = $3, updated_at = $4 WHERE id = $2 AND user_id = $1`

// recordReviewSQL applies one review outcome. The mastery level is never
// written; it is derived from times_correct wherever it is needed.
const recordReviewSQL = `
UPDATE words
SET times_reviewed = times_reviewed + 1,
    times_correct  = times_correct + CASE WHEN $3 THEN 1 ELSE 0 END,
    last_reviewed_at = $4,
    updated_at       = $4
WHERE id = $2 AND user_id = $1
RETURNING ` + wordColumns

// Selection queries. Each excludes hidden words and orders deterministically,
// with id as the final tiebreak so identical data always yields the same queue.

const selectNewSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND times_reviewed = 0 AND NOT is_hidden
ORDER BY created_at ASC, id ASC
LIMIT $2`

const selectReviewSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND times_reviewed > 0 AND NOT is_hidden
ORDER BY last_reviewed_at ASC, id ASC
LIMIT $2`

const selectDifficultSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND NOT is_hidden
  AND (difficulty = 'hard'
       OR (times_reviewed >= 3 AND times_correct::float / times_reviewed < 0.6))
ORDER BY
  CASE WHEN times_reviewed = 0 THEN 0 ELSE times_correct::float / times_reviewed END ASC,
  times_reviewed DESC,
  id ASC
LIMIT $2`

const countByUserSQL = `SELECT count(*) FROM words WHERE user_id = $1`

const countAllSQL = `
SELECT count(*) FILTER (WHERE user_id IS NOT NULL),
	count(*) FILTER (WHERE user_id IS NULL)
FROM words
`

const countMasteredSQL = `
SELECT count(*) FROM words WHERE user_id = $1 AND times_correct >= 3`

const masteryBreakdownSQL = `
SELECT
    count(*) AS total,
    count(*) FILTER (WHERE times_correct = 0) AS new_count,
    count(*) FILTER (WHERE times_correct BETWEEN 1 AND 2) AS learning_count,
    count(*) FILTER (WHERE times_correct >= 3) AS mastered_count,
    count(*) FILTER (WHERE is_favorite) AS favorite_count
FROM words
WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key scoped to its owner.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getByIDSQL, userID, wordID))
	if err != nil {
		return domain.Word{}, mapError(err, "word", wordID)
	}

	return w, nil
}

// GetByText returns the owner's word with the given normalized text.
func (r *Repo) GetByText(ctx context.Context, userID uuid.UUID, textNormalized string) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getByTextSQL, userID, textNormalized))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Word{}, fmt.Errorf("word %q: %w", textNormalized, domain.ErrNotFound)
		}
		return domain.Word{}, fmt.Errorf("get word by text: %w", err)
	}

	return w, nil
}

// GetByIDs returns the owner's words matching the given IDs.
// Order is unspecified; missing IDs are silently absent.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}

	return words, nil
}

// GetBaseByID returns a base-catalog word (user_id IS NULL) by primary key.
func (r *Repo) GetBaseByID(ctx context.Context, wordID uuid.UUID) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, getBaseByIDSQL, wordID))
	if err != nil {
		return domain.Word{}, mapError(err, "base_word", wordID)
	}

	return w, nil
}

// List returns the owner's words matching the filter plus the total count
// before pagination.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.WordFilter) ([]domain.Word, int, error) {
	filter = normalizeFilter(filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := applyFilter(squirrel.Select().
		From("words").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar), filter)

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count words: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns(wordColumns).
		OrderBy(sortColumn(filter) + " " + filter.SortOrder + " NULLS LAST").
		OrderBy("id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}

	return words, total, nil
}

// ListBase returns base-catalog words matching an optional search and
// difficulty, ordered by text, plus the total count before pagination.
func (r *Repo) ListBase(ctx context.Context, search string, difficulty *domain.Difficulty, limit, offset int) ([]domain.Word, int, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := squirrel.Select().
		From("words").
		Where("user_id IS NULL").
		PlaceholderFormat(squirrel.Dollar)
	if search != "" {
		base = base.Where("text_normalized ILIKE ?", "%"+domain.NormalizeText(search)+"%")
	}
	if difficulty != nil {
		base = base.Where(squirrel.Eq{"difficulty": difficulty.String()})
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count base words: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns(wordColumns).
		OrderBy("text_normalized ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list base words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list base words: %w", err)
	}

	return words, total, nil
}

// SelectNew returns unreviewed, non-hidden words in insertion order.
func (r *Repo) SelectNew(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	return r.selectWords(ctx, selectNewSQL, userID, limit)
}

// SelectReview returns reviewed, non-hidden words, stalest review first.
func (r *Repo) SelectReview(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	return r.selectWords(ctx, selectReviewSQL, userID, limit)
}

// SelectDifficult returns non-hidden words rated hard or reviewed at least
// three times with accuracy below 0.6, lowest accuracy first.
func (r *Repo) SelectDifficult(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	return r.selectWords(ctx, selectDifficultSQL, userID, limit)
}

func (r *Repo) selectWords(ctx context.Context, sql string, userID uuid.UUID, limit int) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}

	return words, nil
}

// CountByUser returns the number of words in the owner's library,
// hidden words included.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}

	return count, nil
}

// CountAll returns platform-wide word counts, split into learner-owned
// words and base catalog entries, for the admin stats view.
func (r *Repo) CountAll(ctx context.Context) (learner, base int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countAllSQL).Scan(&learner, &base); err != nil {
		return 0, 0, fmt.Errorf("count all words: %w", err)
	}

	return learner, base, nil
}

// CountMastered returns the number of the owner's words whose derived
// mastery level is mastered.
func (r *Repo) CountMastered(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countMasteredSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count mastered words: %w", err)
	}

	return count, nil
}

// MasteryCounts returns per-level word counts for the owner, computed
// entirely in SQL.
func (r *Repo) MasteryCounts(ctx context.Context, userID uuid.UUID) (domain.MasteryBreakdown, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var b domain.MasteryBreakdown
	err := querier.QueryRow(ctx, masteryBreakdownSQL, userID).Scan(
		&b.Total, &b.New, &b.Learning, &b.Mastered, &b.Favorites,
	)
	if err != nil {
		return domain.MasteryBreakdown{}, fmt.Errorf("mastery counts: %w", err)
	}

	return b, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word and returns the persisted domain.Word. The
// normalized text is always derived here from w.Text.
// A duplicate (user_id, text_normalized) results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w domain.Word) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}

	created, err := scanWord(querier.QueryRow(ctx, createSQL,
		id, w.UserID, w.Text, domain.NormalizeText(w.Text), w.PartOfSpeech.String(),
		w.Definition, w.Example, w.Difficulty.String(),
		w.IsFavorite, w.IsHidden, tags, w.BaseWordID, now,
	))
	if err != nil {
		return domain.Word{}, mapError(err, "word", id)
	}

	return created, nil
}

// Update replaces the editable fields of a word and returns the updated row.
// Returns domain.ErrNotFound if the word does not exist or belongs to
// another user.
func (r *Repo) Update(ctx context.Context, userID, wordID uuid.UUID, params domain.WordUpdateParams) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	w, err := scanWord(querier.QueryRow(ctx, updateSQL,
		userID, wordID, params.Text, domain.NormalizeText(params.Text),
		params.PartOfSpeech.String(), params.Definition, params.Example,
		params.Difficulty.String(), tags, now,
	))
	if err != nil {
		return domain.Word{}, mapError(err, "word", wordID)
	}

	return w, nil
}

// Delete removes a word by ID.
// Returns domain.ErrNotFound if the word does not exist or belongs to
// another user.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, userID, wordID)
	if err != nil {
		return mapError(err, "word", wordID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// SetFavorite toggles the favorite flag on a word.
func (r *Repo) SetFavorite(ctx context.Context, userID, wordID uuid.UUID, favorite bool) error {
	return r.setFlag(ctx, setFavoriteSQL, userID, wordID, favorite)
}

// SetHidden toggles the hidden flag on a word. Hidden words are excluded
// from every selection query.
func (r *Repo) SetHidden(ctx context.Context, userID, wordID uuid.UUID, hidden bool) error {
	return r.setFlag(ctx, setHiddenSQL, userID, wordID, hidden)
}

func (r *Repo) setFlag(ctx context.Context, sql string, userID, wordID uuid.UUID, value bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, sql, userID, wordID, value, now)
	if err != nil {
		return mapError(err, "word", wordID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// SetDifficulty updates the user-assigned difficulty rating.
func (r *Repo) SetDifficulty(ctx context.Context, userID, wordID uuid.UUID, difficulty domain.Difficulty) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, setDifficultySQL, userID, wordID, difficulty.String(), now)
	if err != nil {
		return mapError(err, "word", wordID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// RecordReview atomically applies one review outcome to a word and returns
// the updated row. times_correct only moves when the answer was correct, so
// the derived mastery level can never regress.
func (r *Repo) RecordReview(ctx context.Context, userID, wordID uuid.UUID, correct bool, now time.Time) (domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(querier.QueryRow(ctx, recordReviewSQL, userID, wordID, correct, now.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return domain.Word{}, mapError(err, "word", wordID)
	}

	return w, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanWord scans a single word row from pgx.Row or pgx.Rows.
func scanWord(row pgx.Row) (domain.Word, error) {
	var (
		w            domain.Word
		partOfSpeech string
		difficulty   string
	)

	if err := row.Scan(
		&w.ID, &w.UserID, &w.Text, &w.TextNormalized, &partOfSpeech,
		&w.Definition, &w.Example, &difficulty,
		&w.TimesReviewed, &w.TimesCorrect, &w.LastReviewedAt,
		&w.IsFavorite, &w.IsHidden, &w.Tags, &w.BaseWordID,
		&w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return domain.Word{}, err
	}

	w.PartOfSpeech = domain.PartOfSpeech(partOfSpeech)
	w.Difficulty = domain.Difficulty(difficulty)

	if w.Tags == nil {
		w.Tags = []string{}
	}

	return w, nil
}

// scanWords scans multiple rows into a domain.Word slice.
func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
