package movie

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const maxLineSize = 1 << 20

// SkippedLine records a line the loader could not parse.
type SkippedLine struct {
	Line int
	Err  *ParseError
}

// LoadReport summarizes one load pass.
type LoadReport struct {
	Parsed  int
	Skipped []SkippedLine
}

// Loader builds a Catalog from CSV input. The first line of the input is a
// header and is always discarded.
type Loader struct {
	Parser Parser
	// Logger receives one line per skipped record. Nil disables logging.
	Logger *log.Logger
}

// Load reads the file at path. Errors opening or reading the file are
// returned; malformed records are skipped and listed in the report.
func (l *Loader) Load(path string) (*Catalog, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return l.LoadFrom(f)
}

// LoadFrom reads CSV lines from r. Lines longer than maxLineSize are skipped
// as malformed.
func (l *Loader) LoadFrom(r io.Reader) (*Catalog, LoadReport, error) {
	var (
		report LoadReport
		movies []Movie
	)

	br := bufio.NewReaderSize(r, 64*1024)

	lineNo := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("read catalog: %w", err)
		}
		lineNo++
		if lineNo == 1 {
			continue
		}

		var m Movie
		if tooLong {
			err = &ParseError{Field: "line", Err: fmt.Errorf("%w: longer than %d bytes", ErrMalformedLine, maxLineSize)}
		} else {
			m, err = l.Parser.Parse(string(line))
		}
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = &ParseError{Field: "line", Err: err}
			}
			pe.Line = lineNo
			report.Skipped = append(report.Skipped, SkippedLine{Line: lineNo, Err: pe})
			if l.Logger != nil {
				l.Logger.Printf("skip record line=%d field=%s error=%v", lineNo, pe.Field, pe.Err)
			}
			continue
		}
		movies = append(movies, m)
		report.Parsed++
	}

	return NewCatalog(movies), report, nil
}

// readLine returns the next line without its terminator. The rest of a line
// longer than maxLineSize is drained and tooLong is set.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(frag) > maxLineSize {
				tooLong, line = true, nil
			} else {
				line = append(line, frag...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}
