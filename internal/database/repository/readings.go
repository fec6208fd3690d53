package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/clcc/cablegnosis/internal/database"
)

// Reading is one stored metric sample.
type Reading struct {
	RunID  string
	Metric string
	TS     time.Time
	Value  float64
}

// ReadingRepo handles metric readings.
type ReadingRepo struct {
	db *sql.DB
}

func NewReadingRepo(db *sql.DB) *ReadingRepo { return &ReadingRepo{db: db} }

// InsertBatch stores a generated series in one transaction.
func (r *ReadingRepo) InsertBatch(ctx context.Context, readings []Reading) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO readings(run_id, metric, ts, value, created_at) VALUES(?, ?, ?, ?, ?);
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		now := database.Now()
		for _, rd := range readings {
			if _, err := stmt.ExecContext(ctx, rd.RunID, rd.Metric, rd.TS, rd.Value, now); err != nil {
				return err
			}
		}
		return nil
	})
}

// Window returns the most recent n readings for a metric, oldest first.
func (r *ReadingRepo) Window(ctx context.Context, metric string, n int) ([]Reading, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT run_id, metric, ts, value FROM (
	 SELECT run_id, metric, ts, value FROM readings
	 WHERE metric = ? ORDER BY ts DESC LIMIT ?
	) ORDER BY ts ASC;
	`, metric, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Reading
	for rows.Next() {
		var rd Reading
		if err := rows.Scan(&rd.RunID, &rd.Metric, &rd.TS, &rd.Value); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

// Count returns the number of stored readings for a metric.
func (r *ReadingRepo) Count(ctx context.Context, metric string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM readings WHERE metric = ?`, metric).Scan(&n)
	return n, err
}

// Metrics returns the distinct metric names with stored readings.
func (r *ReadingRepo) Metrics(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT metric FROM readings ORDER BY metric`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
