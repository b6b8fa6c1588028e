package ingest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CreateRun(ctx context.Context, run *Run) (string, error)
	UpdateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) CreateRun(ctx context.Context, run *Run) (string, error) {
	const sql = `
		INSERT INTO ingest_runs (source_path, parse_mode, status, started_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, sql, run.SourcePath, run.ParseMode, run.Status, run.StartedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepo) UpdateRun(ctx context.Context, run *Run) error {
	const sql = `
		UPDATE ingest_runs SET
			finished_at = $1,
			status = $2,
			records_parsed = $3,
			records_skipped = $4,
			records_stored = $5,
			error = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, sql, run.FinishedAt, run.Status, run.Parsed, run.Skipped, run.Stored, run.Error, run.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) GetRun(ctx context.Context, id string) (*Run, error) {
	const sql = `
		SELECT id, source_path, parse_mode, started_at, finished_at, status,
		       records_parsed, records_skipped, records_stored, error
		FROM ingest_runs
		WHERE id = $1`

	var run Run
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&run.ID, &run.SourcePath, &run.ParseMode, &run.StartedAt, &run.FinishedAt, &run.Status,
		&run.Parsed, &run.Skipped, &run.Stored, &run.Error,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &run, nil
}
