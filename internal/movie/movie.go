package movie

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// MaxLanguages is the number of language tokens kept per record.
	MaxLanguages = 5
	// MaxLanguageLen is the number of characters kept per language token.
	MaxLanguageLen = 20
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidRating = errors.New("invalid rating")
	ErrMalformedLine = errors.New("malformed line")
)

// Movie is one parsed catalog record. Values are not modified after parsing.
type Movie struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Languages []string `json:"languages"`
	Rating    float64  `json:"rating"`
}

// Record renders the movie back into the CSV field order it was read from.
func (m Movie) Record() string {
	return m.Title + "," +
		strconv.Itoa(m.Year) + "," +
		"[" + strings.Join(m.Languages, ";") + "]," +
		strconv.FormatFloat(m.Rating, 'f', 1, 64)
}

// HasLanguage reports whether lang equals one of the movie's language tokens.
func (m Movie) HasLanguage(lang string) bool {
	return slices.Contains(m.Languages, lang)
}

// YearBest is the highest rated movie of a single year.
type YearBest struct {
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Title  string  `json:"title"`
}

func (b YearBest) String() string {
	return fmt.Sprintf("%d %.1f %s", b.Year, b.Rating, b.Title)
}

// LanguageMatch is one movie released in a requested language.
type LanguageMatch struct {
	Year  int    `json:"year"`
	Title string `json:"title"`
}

func (m LanguageMatch) String() string {
	return fmt.Sprintf("%d %s", m.Year, m.Title)
}

// ParseError describes a CSV line that could not be turned into a Movie.
type ParseError struct {
	Line  int // 1-based line number in the source, 0 when unknown
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
