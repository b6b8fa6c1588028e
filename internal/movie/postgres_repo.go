package movie

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// ReplaceAll swaps the stored catalog for movies, keeping their order.
func (r *PostgresRepo) ReplaceAll(ctx context.Context, movies []Movie) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(timeoutCtx)

	if _, err := tx.Exec(timeoutCtx, `TRUNCATE movies RESTART IDENTITY`); err != nil {
		return 0, err
	}

	n, err := tx.CopyFrom(timeoutCtx,
		pgx.Identifier{"movies"},
		[]string{"position", "title", "year", "languages", "rating"},
		pgx.CopyFromSlice(len(movies), func(i int) ([]any, error) {
			m := movies[i]
			return []any{i, m.Title, m.Year, m.Languages, m.Rating}, nil
		}),
	)
	if err != nil {
		return 0, err
	}
	return n, tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) TitlesByYear(ctx context.Context, year int) ([]string, error) {
	const query = `
		SELECT title
		FROM movies
		WHERE year = $1
		ORDER BY position`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, year)
	if err != nil {
		return nil, err
	}
	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []string{}
	}
	return titles, nil
}

func (r *PostgresRepo) HighestRatedByYear(ctx context.Context) ([]YearBest, error) {
	// DISTINCT ON keeps the first row per year: highest rating, then earliest position.
	const query = `
		SELECT DISTINCT ON (year) year, rating, title
		FROM movies
		ORDER BY year, rating DESC, position`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []YearBest{}
	for rows.Next() {
		var b YearBest
		if err := rows.Scan(&b.Year, &b.Rating, &b.Title); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) MoviesByLanguage(ctx context.Context, language string) ([]LanguageMatch, error) {
	const query = `
		SELECT year, title
		FROM movies
		WHERE $1 = ANY(languages)
		ORDER BY position`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LanguageMatch{}
	for rows.Next() {
		var m LanguageMatch
		if err := rows.Scan(&m.Year, &m.Title); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
