package movie

//go:generate mockgen -source=ports.go -destination=mock_store_test.go -package=movie

import (
	"context"
)

// Store answers the catalog queries. Implementations return empty slices,
// not errors, when nothing matches.
type Store interface {
	TitlesByYear(ctx context.Context, year int) ([]string, error)
	HighestRatedByYear(ctx context.Context) ([]YearBest, error)
	MoviesByLanguage(ctx context.Context, language string) ([]LanguageMatch, error)
}
