package usecase

import (
	"context"
	"fmt"
	"strings"

	"book-catalog/domain"
	"book-catalog/port"
)

// SuggestTitlesUsecase returns title completions for a prefix from the
// index's suggestion feature, in the engine's relevance order.
type SuggestTitlesUsecase struct {
	searchEngine port.SearchEngine
	size         int
}

func NewSuggestTitlesUsecase(searchEngine port.SearchEngine, size int) *SuggestTitlesUsecase {
	return &SuggestTitlesUsecase{
		searchEngine: searchEngine,
		size:         size,
	}
}

func (u *SuggestTitlesUsecase) Execute(ctx context.Context, prefix string) ([]string, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, domain.ErrEmptyPrefix
	}

	suggestions, err := u.searchEngine.Suggest(ctx, prefix, u.size)
	if err != nil {
		return nil, fmt.Errorf("suggest titles: %w", err)
	}

	return suggestions, nil
}
