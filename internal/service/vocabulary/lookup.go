package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
	"github.com/promisinganuj/kids-vocabulary-app/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// 11. LookupWord
// ---------------------------------------------------------------------------

// LookupWord fetches an AI-generated dictionary entry for pre-filling the
// add-word form. Nothing is stored; the caller decides whether to create
// the word.
func (s *Service) LookupWord(ctx context.Context, word string) (*provider.LookupResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	if len(word) > maxTextLen {
		return nil, domain.NewValidationError("word", "too long (max 255)")
	}

	if s.lookup == nil {
		return nil, domain.NewValidationError("lookup", "not configured")
	}

	result, err := s.lookup.LookupWord(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("lookup word: %w", err)
	}

	return result, nil
}
