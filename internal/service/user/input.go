package user

import (
	"regexp"
	"unicode/utf8"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

const (
	nameMaxLen          = 100
	learningGoalsMaxLen = 500
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// UpdateProfileInput holds the editable profile fields. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Name          *string
	AvatarColor   *string
	LearningGoals *string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if utf8.RuneCountInString(*i.Name) > nameMaxLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.AvatarColor != nil && !hexColorRe.MatchString(*i.AvatarColor) {
		errs = append(errs, domain.FieldError{Field: "avatar_color", Message: "must be a hex color like #3498db"})
	}
	if i.LearningGoals != nil && utf8.RuneCountInString(*i.LearningGoals) > learningGoalsMaxLen {
		errs = append(errs, domain.FieldError{Field: "learning_goals", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
