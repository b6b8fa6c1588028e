package movie

import (
	"context"
)

// Service provides the catalog queries on top of a Store.
type Service struct {
	store Store
}

// NewService creates a new movie service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// TitlesByYear returns the titles released in year.
func (s *Service) TitlesByYear(ctx context.Context, year int) ([]string, error) {
	return s.store.TitlesByYear(ctx, year)
}

// HighestRatedByYear returns the best rated movie of each year, oldest first.
func (s *Service) HighestRatedByYear(ctx context.Context) ([]YearBest, error) {
	return s.store.HighestRatedByYear(ctx)
}

// MoviesByLanguage returns the movies available in language.
func (s *Service) MoviesByLanguage(ctx context.Context, language string) ([]LanguageMatch, error) {
	return s.store.MoviesByLanguage(ctx, language)
}
