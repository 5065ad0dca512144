package study

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// maxResponseTimeMs caps the reported answer time (10 minutes).
const maxResponseTimeMs = 600_000

// StartSessionInput holds the parameters for starting a study session.
type StartSessionInput struct {
	Mode domain.StudyMode
	// GoalCount is the number of words to review. Zero means the
	// configured default.
	GoalCount int
	// TimeLimitSeconds is an optional soft time limit, checked lazily on
	// each submitted answer.
	TimeLimitSeconds *int
}

// Validate checks all fields and collects all errors.
func (i *StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "mode",
			Message: "must be one of: new, review, mixed, difficult",
		})
	}
	if i.GoalCount != 0 && (i.GoalCount < domain.SessionGoalMin || i.GoalCount > domain.SessionGoalMax) {
		errs = append(errs, domain.FieldError{
			Field:   "goal_count",
			Message: fmt.Sprintf("must be between %d and %d", domain.SessionGoalMin, domain.SessionGoalMax),
		})
	}
	if i.TimeLimitSeconds != nil &&
		(*i.TimeLimitSeconds < domain.SessionTimeLimitMinSeconds || *i.TimeLimitSeconds > domain.SessionTimeLimitMaxSeconds) {
		errs = append(errs, domain.FieldError{
			Field:   "time_limit_seconds",
			Message: fmt.Sprintf("must be between %d and %d", domain.SessionTimeLimitMinSeconds, domain.SessionTimeLimitMaxSeconds),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds one answer to the word at the head of the
// session queue.
type SubmitAnswerInput struct {
	SessionID      uuid.UUID
	WordID         uuid.UUID
	Correct        bool
	ResponseTimeMs *int
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "is required"})
	}
	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "is required"})
	}
	if i.ResponseTimeMs != nil && (*i.ResponseTimeMs < 0 || *i.ResponseTimeMs > maxResponseTimeMs) {
		errs = append(errs, domain.FieldError{
			Field:   "response_time_ms",
			Message: fmt.Sprintf("must be between 0 and %d", maxResponseTimeMs),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
