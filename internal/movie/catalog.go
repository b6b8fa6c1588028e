package movie

import (
	"iter"
	"maps"
	"slices"
)

// Catalog is the ordered, read-only set of movies from one load. It is safe
// for concurrent readers.
type Catalog struct {
	movies []Movie
}

// NewCatalog takes ownership of movies; the caller must not modify the slice
// afterwards.
func NewCatalog(movies []Movie) *Catalog {
	return &Catalog{movies: movies}
}

// Len returns the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// All yields every movie in file order.
func (c *Catalog) All() iter.Seq[Movie] {
	return slices.Values(c.movies)
}

// ByYear yields the titles of movies released in year, in file order.
func (c *Catalog) ByYear(year int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, m := range c.movies {
			if m.Year != year {
				continue
			}
			if !yield(m.Title) {
				return
			}
		}
	}
}

// HighestPerYear yields the best rated movie of every year that has data,
// ascending by year. On equal ratings the movie that appears first wins.
func (c *Catalog) HighestPerYear() iter.Seq[YearBest] {
	return func(yield func(YearBest) bool) {
		best := make(map[int]int)
		for i, m := range c.movies {
			j, ok := best[m.Year]
			if !ok || m.Rating > c.movies[j].Rating {
				best[m.Year] = i
			}
		}
		for _, year := range slices.Sorted(maps.Keys(best)) {
			m := c.movies[best[year]]
			if !yield(YearBest{Year: m.Year, Rating: m.Rating, Title: m.Title}) {
				return
			}
		}
	}
}

// ByLanguage yields the movies that list language among their language
// tokens. Matching is exact and case sensitive.
func (c *Catalog) ByLanguage(language string) iter.Seq[LanguageMatch] {
	return func(yield func(LanguageMatch) bool) {
		for _, m := range c.movies {
			if !m.HasLanguage(language) {
				continue
			}
			if !yield(LanguageMatch{Year: m.Year, Title: m.Title}) {
				return
			}
		}
	}
}
