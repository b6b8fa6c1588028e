package movie

import (
	"context"
	"iter"
	"slices"
)

// MemoryStore serves queries from a loaded Catalog.
type MemoryStore struct {
	catalog *Catalog
}

func NewMemoryStore(c *Catalog) *MemoryStore {
	return &MemoryStore{catalog: c}
}

func (s *MemoryStore) TitlesByYear(_ context.Context, year int) ([]string, error) {
	return collect(s.catalog.ByYear(year)), nil
}

func (s *MemoryStore) HighestRatedByYear(_ context.Context) ([]YearBest, error) {
	return collect(s.catalog.HighestPerYear()), nil
}

func (s *MemoryStore) MoviesByLanguage(_ context.Context, language string) ([]LanguageMatch, error) {
	return collect(s.catalog.ByLanguage(language)), nil
}

func collect[T any](seq iter.Seq[T]) []T {
	out := slices.Collect(seq)
	if out == nil {
		return []T{}
	}
	return out
}
