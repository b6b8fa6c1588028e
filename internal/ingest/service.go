package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"moviecatalog/internal/movie"
)

// CatalogWriter persists a loaded catalog, replacing what was stored before.
type CatalogWriter interface {
	ReplaceAll(ctx context.Context, movies []movie.Movie) (int64, error)
}

type Service struct {
	loader     *movie.Loader
	catalog    CatalogWriter
	ingestRepo Repository
}

func NewService(loader *movie.Loader, catalog CatalogWriter, ingestRepo Repository) *Service {
	return &Service{
		loader:     loader,
		catalog:    catalog,
		ingestRepo: ingestRepo,
	}
}

// Run imports the CSV file at path into the movie store and records the
// outcome as an ingest run.
func (s *Service) Run(ctx context.Context, path string) (run *Run, err error) {
	mode := s.loader.Parser.Mode
	if mode == "" {
		mode = movie.ModeStrict
	}
	run = &Run{
		SourcePath: path,
		ParseMode:  string(mode),
		Status:     StatusRunning,
		StartedAt:  time.Now(),
	}
	runID, err := s.ingestRepo.CreateRun(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("create ingest run: %w", err)
	}
	run.ID = runID

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}

		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		if updateErr := s.ingestRepo.UpdateRun(ctx, run); updateErr != nil {
			log.Printf("Failed to update ingest run %s: %v", run.ID, updateErr)
		}
	}()

	catalog, report, err := s.loader.Load(path)
	if err != nil {
		return run, err
	}
	run.Parsed = report.Parsed
	run.Skipped = len(report.Skipped)

	movies := make([]movie.Movie, 0, catalog.Len())
	for m := range catalog.All() {
		movies = append(movies, m)
	}

	stored, err := s.catalog.ReplaceAll(ctx, movies)
	if err != nil {
		return run, fmt.Errorf("store movies: %w", err)
	}
	run.Stored = stored

	log.Printf("ingest run=%s path=%s parsed=%d skipped=%d stored=%d", run.ID, path, run.Parsed, run.Skipped, run.Stored)
	return run, nil
}
