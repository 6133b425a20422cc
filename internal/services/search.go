package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/blogify-app/backend/internal/models"
	"github.com/blogify-app/backend/internal/repositories"
)

// Queries at or below this length are likely stop-words the text index
// handles poorly, so they skip the ranked path entirely.
const shortQueryMax = 3

// SearchService resolves free-text blog queries into a result set,
// choosing between the ranked text-index path and the substring fallback.
type SearchService struct {
	blogRepository repositories.BlogRepository
}

// NewSearchService creates a new SearchService
func NewSearchService(blogRepo repositories.BlogRepository) *SearchService {
	return &SearchService{blogRepository: blogRepo}
}

// Search returns the blogs matching query. An empty or whitespace-only
// query returns every blog in natural order. A present query runs the
// ranked full-text match, falling back to a case-insensitive substring
// match over title, shortDescription and tags when the query is short or
// the ranked match comes back empty.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.Blog, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.blogRepository.GetAllBlogs(ctx)
	}

	if utf8.RuneCountInString(trimmed) <= shortQueryMax {
		return s.substringFallback(ctx, trimmed)
	}

	ranked, err := s.blogRepository.TextSearch(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if len(ranked) > 0 {
		return ranked, nil
	}

	return s.substringFallback(ctx, trimmed)
}

// substringFallback quotes the query so pattern metacharacters in user
// input match literally instead of being interpreted.
func (s *SearchService) substringFallback(ctx context.Context, query string) ([]models.Blog, error) {
	return s.blogRepository.RegexSearch(ctx, regexp.QuoteMeta(query))
}
