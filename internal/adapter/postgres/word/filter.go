package word

import (
	"github.com/Masterminds/squirrel"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	sortByText           = "text"
	sortByCreatedAt      = "created_at"
	sortByLastReviewedAt = "last_reviewed_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.WordFilter) domain.WordFilter {
	switch f.SortBy {
	case sortByText, sortByCreatedAt, sortByLastReviewedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}

// sortColumn returns the SQL column name for the filter's SortBy value.
func sortColumn(f domain.WordFilter) string {
	switch f.SortBy {
	case sortByText:
		return "text_normalized"
	case sortByLastReviewedAt:
		return "last_reviewed_at"
	default:
		return "created_at"
	}
}

// applyFilter adds the filter's predicates to a squirrel select builder.
func applyFilter(q squirrel.SelectBuilder, f domain.WordFilter) squirrel.SelectBuilder {
	if f.Search != nil && *f.Search != "" {
		q = q.Where("text_normalized ILIKE ?", "%"+domain.NormalizeText(*f.Search)+"%")
	}
	if f.Difficulty != nil {
		q = q.Where(squirrel.Eq{"difficulty": f.Difficulty.String()})
	}
	if f.Mastery != nil {
		q = q.Where(masteryPredicate(*f.Mastery))
	}
	if f.Favorite != nil {
		q = q.Where(squirrel.Eq{"is_favorite": *f.Favorite})
	}
	if f.PartOfSpeech != nil {
		q = q.Where(squirrel.Eq{"part_of_speech": f.PartOfSpeech.String()})
	}
	if f.Tag != nil && *f.Tag != "" {
		q = q.Where("? = ANY(tags)", *f.Tag)
	}
	if !f.IncludeHidden {
		q = q.Where(squirrel.Eq{"is_hidden": false})
	}
	return q
}

// masteryPredicate translates a mastery level into its counter predicate.
// The thresholds mirror domain.MasteryFor.
func masteryPredicate(level domain.MasteryLevel) squirrel.Sqlizer {
	switch level {
	case domain.MasteryMastered:
		return squirrel.GtOrEq{"times_correct": 3}
	case domain.MasteryLearning:
		return squirrel.And{
			squirrel.GtOrEq{"times_correct": 1},
			squirrel.LtOrEq{"times_correct": 2},
		}
	default:
		return squirrel.Eq{"times_correct": 0}
	}
}
