package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Run is one finished run in the journal.
type Run struct {
	ID          uuid.UUID
	Seed        int64
	Ticks       uint64
	Distance    float64
	MaxInsanity float64
	EndedAt     time.Time
}

// Survived converts the tick count to wall time at the given tick rate.
func (r Run) Survived(tick time.Duration) time.Duration {
	return time.Duration(r.Ticks) * tick
}

type RunRepo struct {
	db *DB
}

func NewRunRepo(db *DB) *RunRepo {
	return &RunRepo{db: db}
}

// Insert stores run. Writing the same run twice is a no-op.
func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO runs (id, seed, ticks, distance, max_insanity, ended_at)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO NOTHING`,
		run.ID.String(), run.Seed, int64(run.Ticks), run.Distance, run.MaxInsanity, run.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns the n most recently finished runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id::text, seed, ticks, distance, max_insanity, ended_at
		 FROM runs ORDER BY ended_at DESC LIMIT $1`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Best returns the run that got furthest from spawn. ok is false when the
// journal is empty.
func (r *RunRepo) Best(ctx context.Context) (run Run, ok bool, err error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT id::text, seed, ticks, distance, max_insanity, ended_at
		 FROM runs ORDER BY distance DESC LIMIT 1`,
	)
	run, err = scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

func scanRun(row pgx.Row) (Run, error) {
	var (
		run   Run
		id    string
		ticks int64
	)
	if err := row.Scan(&id, &run.Seed, &ticks, &run.Distance, &run.MaxInsanity, &run.EndedAt); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("scan run id %q: %w", id, err)
	}
	run.ID = parsed
	run.Ticks = uint64(ticks)
	return run, nil
}
