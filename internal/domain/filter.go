package domain

// WordFilter contains filtering/pagination parameters for word-library
// listings. Hidden words are excluded unless IncludeHidden is set.
type WordFilter struct {
	// Search performs a case-insensitive substring match on the
	// normalized word text.
	Search *string

	// Difficulty filters by the user-assigned difficulty rating.
	Difficulty *Difficulty

	// Mastery filters by derived mastery level. The predicate is computed
	// from times_correct; mastery is not a column.
	Mastery *MasteryLevel

	// Favorite filters favorite (true) or non-favorite (false) words.
	Favorite *bool

	// PartOfSpeech filters by grammatical category.
	PartOfSpeech *PartOfSpeech

	// Tag filters words carrying the given tag.
	Tag *string

	// IncludeHidden includes hidden words in results.
	IncludeHidden bool

	// SortBy determines the sort column: "text", "created_at",
	// "last_reviewed_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of words to return.
	Limit int

	// Offset is the number of words to skip.
	Offset int
}
