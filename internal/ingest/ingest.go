package ingest

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an ingest run does not exist.
var ErrNotFound = errors.New("ingest run not found")

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run is the bookkeeping row for one CSV import.
type Run struct {
	ID         string
	SourcePath string
	ParseMode  string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // RUNNING, COMPLETED, FAILED
	Parsed     int
	Skipped    int
	Stored     int64
	Error      string
}
