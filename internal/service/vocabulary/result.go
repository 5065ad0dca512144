package vocabulary

import (
	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
)

// ListResult contains one page of a word listing.
type ListResult struct {
	Words       []domain.Word
	TotalCount  int
	HasNextPage bool
}
