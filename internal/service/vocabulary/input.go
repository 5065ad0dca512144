package vocabulary

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// Field length caps for learner-entered word data.
const (
	maxTextLen       = 255
	maxDefinitionLen = 2000
	maxExampleLen    = 2000
	maxTags          = 10
	maxTagLen        = 50
)

// CreateWordInput holds the parameters for adding a word to the library.
type CreateWordInput struct {
	Text         string
	PartOfSpeech domain.PartOfSpeech
	Definition   string
	Example      string

	// Difficulty is optional; empty means medium.
	Difficulty domain.Difficulty

	Tags []string
}

// Validate checks all fields and collects all errors.
func (i *CreateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max " + strconv.Itoa(maxTextLen) + ")"})
	}

	if !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}

	if i.Definition == "" {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
	} else if len(i.Definition) > maxDefinitionLen {
		errs = append(errs, domain.FieldError{Field: "definition", Message: "too long (max " + strconv.Itoa(maxDefinitionLen) + ")"})
	}

	if len(i.Example) > maxExampleLen {
		errs = append(errs, domain.FieldError{Field: "example", Message: "too long (max " + strconv.Itoa(maxExampleLen) + ")"})
	}

	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWordInput holds the editable word fields. Nil pointers (and a nil
// Tags slice) leave the current value unchanged; review counters and the
// derived mastery level are never part of an update.
type UpdateWordInput struct {
	WordID       uuid.UUID
	Text         *string
	PartOfSpeech *domain.PartOfSpeech
	Definition   *string
	Example      *string
	Tags         []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}

	if i.Text != nil {
		if *i.Text == "" {
			errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
		} else if len(*i.Text) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max " + strconv.Itoa(maxTextLen) + ")"})
		}
	}

	if i.PartOfSpeech != nil && !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}

	if i.Definition != nil {
		if *i.Definition == "" {
			errs = append(errs, domain.FieldError{Field: "definition", Message: "required"})
		} else if len(*i.Definition) > maxDefinitionLen {
			errs = append(errs, domain.FieldError{Field: "definition", Message: "too long (max " + strconv.Itoa(maxDefinitionLen) + ")"})
		}
	}

	if i.Example != nil && len(*i.Example) > maxExampleLen {
		errs = append(errs, domain.FieldError{Field: "example", Message: "too long (max " + strconv.Itoa(maxExampleLen) + ")"})
	}

	if i.Tags != nil {
		errs = append(errs, validateTags(i.Tags)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListWordsInput holds the parameters for listing the learner's library.
type ListWordsInput struct {
	Search        *string
	Difficulty    *domain.Difficulty
	Mastery       *domain.MasteryLevel
	Favorite      *bool
	PartOfSpeech  *domain.PartOfSpeech
	Tag           *string
	IncludeHidden bool
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i *ListWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" {
		switch i.SortBy {
		case "text", "created_at", "last_reviewed_at":
			// valid
		default:
			errs = append(errs, domain.FieldError{Field: "sort_by", Message: "invalid value (allowed: text, created_at, last_reviewed_at)"})
		}
	}

	if i.SortOrder != "" {
		switch i.SortOrder {
		case "ASC", "DESC":
			// valid
		default:
			errs = append(errs, domain.FieldError{Field: "sort_order", Message: "invalid value (allowed: ASC, DESC)"})
		}
	}

	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if i.Mastery != nil && !i.Mastery.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mastery", Message: "invalid value"})
	}

	if i.PartOfSpeech != nil && !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListBaseWordsInput holds the parameters for browsing the shared catalog.
type ListBaseWordsInput struct {
	Search     string
	Difficulty *domain.Difficulty
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i *ListBaseWordsInput) Validate() error {
	var errs []domain.FieldError

	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetDifficultyInput holds the parameters for rating a word.
type SetDifficultyInput struct {
	WordID     uuid.UUID
	Difficulty domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *SetDifficultyInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateTags checks a tag list against the shared limits.
func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max " + strconv.Itoa(maxTags) + ")"})
	}
	for idx, tag := range tags {
		if tag == "" {
			errs = append(errs, domain.FieldError{Field: "tags[" + strconv.Itoa(idx) + "]", Message: "required"})
		} else if len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags[" + strconv.Itoa(idx) + "]", Message: "too long (max " + strconv.Itoa(maxTagLen) + ")"})
		}
	}

	return errs
}
