package movie

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseMode selects how malformed numeric fields are treated.
type ParseMode string

const (
	// ModeStrict rejects records whose year or rating is not a number.
	ModeStrict ParseMode = "strict"
	// ModeLegacy coerces unparseable year and rating text to zero, the way
	// atoi and strtof do, and keeps the record.
	ModeLegacy ParseMode = "legacy"
)

// ParseModeFrom maps a config value to a ParseMode.
func ParseModeFrom(s string) (ParseMode, error) {
	switch ParseMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeStrict:
		return ModeStrict, nil
	case ModeLegacy:
		return ModeLegacy, nil
	default:
		return "", fmt.Errorf("unknown parse mode %q (use strict or legacy)", s)
	}
}

var fieldNames = [...]string{"title", "year", "languages", "rating"}

// Parser turns single CSV lines into movies. The zero value parses strictly.
type Parser struct {
	Mode ParseMode
}

// Parse converts one line of the form
//
//	title,year,[lang1;lang2],rating
//
// into a Movie. The line is split on every ',' with no quoting rules, so the
// title is kept exactly as written. Fields after the fourth are ignored.
func (p Parser) Parse(line string) (Movie, error) {
	line = strings.TrimRight(line, "\r\n")

	fields := strings.Split(line, ",")
	if fields[0] == "" {
		return Movie{}, &ParseError{Field: fieldNames[0], Err: ErrMissingField}
	}
	if len(fields) < len(fieldNames) {
		return Movie{}, &ParseError{Field: fieldNames[len(fields)], Err: ErrMissingField}
	}

	year, err := p.parseYear(fields[1])
	if err != nil {
		return Movie{}, &ParseError{Field: "year", Err: err}
	}
	rating, err := p.parseRating(fields[3])
	if err != nil {
		return Movie{}, &ParseError{Field: "rating", Err: err}
	}

	return Movie{
		Title:     fields[0],
		Year:      year,
		Languages: SplitLanguages(fields[2]),
		Rating:    rating,
	}, nil
}

func (p Parser) parseYear(s string) (int, error) {
	if p.Mode == ModeLegacy {
		return atoi(s), nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, s)
	}
	return year, nil
}

func (p Parser) parseRating(s string) (float64, error) {
	if p.Mode == ModeLegacy {
		return strtof(s), nil
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return rating, nil
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// atoi returns the value of the leading integer in s, or 0.
func atoi(s string) int {
	m := intPrefix.FindString(strings.TrimLeft(s, " \t"))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// out of range; keep the sign the way strtol saturates
		if strings.HasPrefix(m, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return n
}

// strtof returns the value of the leading decimal number in s, or 0. The
// result is always finite.
func strtof(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t"))
	if m == "" {
		return 0
	}
	// out of range input saturates at the float32 limits instead of ±Inf
	f, _ := strconv.ParseFloat(m, 64)
	return max(-math.MaxFloat32, min(f, math.MaxFloat32))
}

// SplitLanguages tokenizes a raw language field such as "[English;French]".
// One leading '[' and one trailing ']' are removed when present, the rest is
// split on ';', empty tokens are dropped, at most MaxLanguages tokens are
// kept and each is cut to MaxLanguageLen characters.
func SplitLanguages(raw string) []string {
	raw = strings.TrimRight(raw, "\r\n")
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	langs := make([]string, 0, MaxLanguages)
	for tok := range strings.SplitSeq(raw, ";") {
		if tok == "" {
			continue
		}
		if len(langs) == MaxLanguages {
			break
		}
		langs = append(langs, truncate(tok, MaxLanguageLen))
	}
	return langs
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
