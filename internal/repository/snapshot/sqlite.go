// Package snapshot persists the history of snapshot loads: one row per
// canonical-table rebuild, used for provenance (which file version is being
// served, since when, how many records).
package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pedrororo/jobs-explorer/internal/jobs"
)

const timeFormat = time.RFC3339

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, l *jobs.SnapshotLoad) error {
	const query = `INSERT INTO snapshot_loads (path, token, records, loaded_at)
		VALUES (?, ?, ?, ?)`

	if l.LoadedAt.IsZero() {
		l.LoadedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, query,
		l.Path, l.Token, l.Records, l.LoadedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("save snapshot load: %w", err)
	}

	l.ID, _ = res.LastInsertId()
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]jobs.SnapshotLoad, error) {
	const query = `SELECT id, path, token, records, loaded_at
		FROM snapshot_loads ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshot loads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var loads []jobs.SnapshotLoad
	for rows.Next() {
		var (
			l        jobs.SnapshotLoad
			loadedAt string
		)
		if err := rows.Scan(&l.ID, &l.Path, &l.Token, &l.Records, &loadedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot load: %w", err)
		}
		l.LoadedAt, _ = time.Parse(timeFormat, loadedAt)
		loads = append(loads, l)
	}

	return loads, rows.Err()
}
