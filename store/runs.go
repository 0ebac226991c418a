// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/stoich/chem"
)

// Status is the outcome recorded for a run.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// DefaultListLimit caps List when no positive limit is given.
const DefaultListLimit = 20

// Run is one recorded balancing attempt.
type Run struct {
	ID        string
	Equation  string // unbalanced input
	Balanced  string // rendered reaction, empty on failure
	Status    Status
	Error     string // error text, empty on success
	CreatedAt time.Time
}

// NewRun builds a Run from the outcome of a balance call.
func NewRun(id, equation string, reaction chem.BalancedReaction, err error, at time.Time) Run {
	r := Run{ID: id, Equation: equation, CreatedAt: at.UTC(), Status: StatusOK}
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
		return r
	}
	r.Balanced = reaction.String()

	return r
}

// Record inserts r. A zero CreatedAt is replaced with the current time.
func (s *Store) Record(ctx context.Context, r Run) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, equation, balanced, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.ID, r.Equation, r.Balanced, string(r.Status), r.Error, r.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record run %s: %w", r.ID, err)
	}

	return nil
}

// Get returns the run with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, equation, balanced, status, error, created_at
		FROM runs
		WHERE id = ?
	`, id)

	return scanRun(row)
}

// LatestByEquation returns the most recently recorded run of equation, or ErrNotFound.
func (s *Store) LatestByEquation(ctx context.Context, equation string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, equation, balanced, status, error, created_at
		FROM runs
		WHERE equation = ?
		ORDER BY seq DESC
		LIMIT 1
	`, equation)

	return scanRun(row)
}

// List returns up to limit runs, newest first. limit <= 0 selects DefaultListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, equation, balanced, status, error, created_at
		FROM runs
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return out, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r      Run
		status string
		nanos  int64
	)
	if err := sc.Scan(&r.ID, &r.Equation, &r.Balanced, &status, &r.Error, &nanos); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	r.Status = Status(status)
	r.CreatedAt = time.Unix(0, nanos).UTC()

	return r, nil
}
