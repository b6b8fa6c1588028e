// Package shell runs the interactive text menu over a loaded catalog.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"moviecatalog/internal/movie"
)

const menu = `
1. Show movies released in the specified year
2. Show highest rated movie for each year
3. Show the title and year of release of all movies in a specific language
4. Exit from the program

`

// Catalog is the query surface the shell needs.
type Catalog interface {
	ByYear(year int) iter.Seq[string]
	HighestPerYear() iter.Seq[movie.YearBest]
	ByLanguage(language string) iter.Seq[movie.LanguageMatch]
}

type Shell struct {
	catalog Catalog
	in      *bufio.Scanner
	out     io.Writer
}

func New(catalog Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("Enter a choice from 1 to 4: ")
		if !ok {
			return s.in.Err()
		}

		// non-numbers parse as 0 and land in the default case
		n, _ := strconv.Atoi(choice)
		switch n {
		case 1:
			year, ok := s.promptYear()
			if !ok {
				return s.in.Err()
			}
			s.showByYear(year)
		case 2:
			s.showHighestPerYear()
		case 3:
			language, ok := s.promptLanguage()
			if !ok {
				return s.in.Err()
			}
			s.showByLanguage(language)
		case 4:
			return nil
		default:
			fmt.Fprintln(s.out, "You entered an incorrect choice. Try again.")
		}
	}
}

func (s *Shell) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) promptYear() (int, bool) {
	for {
		text, ok := s.prompt("Enter the year for which you want to see movies: ")
		if !ok {
			return 0, false
		}
		year, err := strconv.Atoi(text)
		if err == nil {
			return year, true
		}
		fmt.Fprintln(s.out, "Please enter a valid year.")
	}
}

func (s *Shell) promptLanguage() (string, bool) {
	for {
		text, ok := s.prompt("Enter the language for which you want to see movies: ")
		if !ok {
			return "", false
		}
		if text != "" {
			return text, true
		}
	}
}

func (s *Shell) showByYear(year int) {
	found := false
	for title := range s.catalog.ByYear(year) {
		fmt.Fprintln(s.out, title)
		found = true
	}
	if !found {
		fmt.Fprintf(s.out, "No data about movies released in the year %d\n", year)
	}
}

func (s *Shell) showHighestPerYear() {
	for best := range s.catalog.HighestPerYear() {
		fmt.Fprintln(s.out, best)
	}
}

func (s *Shell) showByLanguage(language string) {
	found := false
	for m := range s.catalog.ByLanguage(language) {
		fmt.Fprintln(s.out, m)
		found = true
	}
	if !found {
		fmt.Fprintf(s.out, "No data about movies released in %s\n", language)
	}
}
