package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"moviecatalog/internal/config"
	"moviecatalog/internal/movie"
	"moviecatalog/internal/shell"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stdout, "Usage: %s <filename>\n", args[0])
		return 1
	}
	path := args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	loader := movie.Loader{Parser: movie.Parser{Mode: cfg.ParseMode}}
	if cfg.LogSkipped {
		loader.Logger = log.New(stderr, "", log.LstdFlags)
	}

	catalog, report, err := loader.Load(path)
	if err != nil {
		fmt.Fprintf(stdout, "Could not open file %s\n", path)
		fmt.Fprintf(stderr, "load error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Processed file %s and parsed data for %d movies\n", path, report.Parsed)

	if err := shell.New(catalog, stdin, stdout).Run(); err != nil {
		fmt.Fprintf(stderr, "input error: %v\n", err)
		return 1
	}
	return 0
}
