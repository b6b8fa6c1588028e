package main

import (
	"context"
	"flag"
	"log"
	"time"

	"moviecatalog/internal/config"
	"moviecatalog/internal/ingest"
	"moviecatalog/internal/movie"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	path := flag.String("file", cfg.CatalogPath, "CSV file to import")
	flag.Parse()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	loader := &movie.Loader{Parser: movie.Parser{Mode: cfg.ParseMode}}
	if cfg.LogSkipped {
		loader.Logger = log.Default()
	}

	// bulk copy of a large file can outlast the per-query timeout
	importTimeout := max(cfg.DBTimeout, time.Minute)
	svc := ingest.NewService(
		loader,
		movie.NewPostgresRepo(pool, importTimeout),
		ingest.NewPostgresRepo(pool),
	)

	log.Printf("Importing movies from %s (parse_mode=%s)...", *path, cfg.ParseMode)
	run, err := svc.Run(ctx, *path)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM movies").Scan(&total); err != nil {
		log.Fatalf("Failed to count movies: %v", err)
	}
	log.Printf("Run %s %s: parsed=%d skipped=%d stored=%d, movies in database: %d",
		run.ID, run.Status, run.Parsed, run.Skipped, run.Stored, total)
}
