// Package store provides PostgreSQL access to the candidate table: claimable
// work selection, claim marking, and idempotent attribute persistence.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool  *pgxpool.Pool
	log   *zap.Logger
	retry RetryPolicy
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, log: log, retry: DefaultRetryPolicy()}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SelectClaimable returns unclaimed candidates whose resume text is ready:
// not yet claimed, non-empty resume, and preprocessed within the window.
// Most recently readied records come first. Transient failures are logged
// and yield an empty slice so a flaky database never aborts a run.
func (s *Store) SelectClaimable(ctx context.Context, window time.Duration, limit int) []types.CandidateRecord {
	cutoff := time.Now().Add(-window)

	var rows pgx.Rows
	err := s.retry.Do(ctx, func() error {
		var err error
		rows, err = s.pool.Query(ctx,
			`SELECT id, resume_text, ready_at
			 FROM candidates
			 WHERE claimed_at IS NULL
			   AND resume_text IS NOT NULL
			   AND resume_text <> ''
			   AND ready_at IS NOT NULL
			   AND ready_at >= $1
			 ORDER BY ready_at DESC
			 LIMIT $2`,
			cutoff, limit,
		)
		return err
	})
	if err != nil {
		s.log.Warn("claimable selection failed", zap.Error(err))
		return []types.CandidateRecord{}
	}
	defer rows.Close()

	records := make([]types.CandidateRecord, 0, limit)
	for rows.Next() {
		var rec types.CandidateRecord
		if err := rows.Scan(&rec.ID, &rec.ResumeText, &rec.ReadyAt); err != nil {
			s.log.Warn("failed to scan candidate row", zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn("claimable selection interrupted", zap.Error(err))
	}
	return records
}

// MarkClaimed attempts to claim each id with a conditional update and
// returns the ids that were actually won. An id already claimed by a
// concurrent run is silently dropped.
func (s *Store) MarkClaimed(ctx context.Context, ids []int, ts time.Time) []int {
	claimed := make([]int, 0, len(ids))
	for _, id := range ids {
		var tag int64
		err := s.retry.Do(ctx, func() error {
			ct, err := s.pool.Exec(ctx,
				`UPDATE candidates SET claimed_at = $2 WHERE id = $1 AND claimed_at IS NULL`,
				id, ts,
			)
			tag = ct.RowsAffected()
			return err
		})
		switch {
		case err != nil:
			s.log.Warn("claim update failed", zap.Int("user_id", id), zap.Error(err))
		case tag == 0:
			s.log.Info("record already claimed elsewhere", zap.Int("user_id", id))
		default:
			claimed = append(claimed, id)
		}
	}
	return claimed
}

// ReleaseClaims clears claimed_at on records that were claimed but never
// processed, making them selectable again.
func (s *Store) ReleaseClaims(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.retry.Do(ctx, func() error {
		_, err := s.pool.Exec(ctx,
			`UPDATE candidates SET claimed_at = NULL WHERE id = ANY($1) AND processed_at IS NULL`,
			ids,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to release claims: %w", err)
	}
	return nil
}

// FetchCandidate loads a single candidate by id regardless of claim state.
func (s *Store) FetchCandidate(ctx context.Context, id int) (types.CandidateRecord, error) {
	var rec types.CandidateRecord
	err := s.retry.Do(ctx, func() error {
		return s.pool.QueryRow(ctx,
			`SELECT id, COALESCE(resume_text, ''), COALESCE(ready_at, 'epoch'::timestamptz)
			 FROM candidates WHERE id = $1`,
			id,
		).Scan(&rec.ID, &rec.ResumeText, &rec.ReadyAt)
	})
	if err != nil {
		return types.CandidateRecord{}, fmt.Errorf("failed to fetch candidate %d: %w", id, err)
	}
	return rec, nil
}

// Result reports the outcome of a persistence attempt. Errors never cross
// the upsert boundary; a failed write is an unsuccessful Result.
type Result struct {
	OK      bool
	Message string
}

// UpsertFields writes extracted attributes for a candidate. If the record
// exists, known fields are updated and unknown fields left untouched so a
// rerun cannot erase earlier results; processed_at is always set. If the
// record does not exist it is inserted with unknown fields as NULL.
func (s *Store) UpsertFields(ctx context.Context, id int, fields types.ParsedFieldSet) Result {
	now := time.Now()

	var exists bool
	err := s.retry.Do(ctx, func() error {
		return s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM candidates WHERE id = $1)`, id,
		).Scan(&exists)
	})
	if err != nil {
		s.log.Error("existence check failed", zap.Int("user_id", id), zap.Error(err))
		return Result{OK: false, Message: fmt.Sprintf("existence check failed: %v", err)}
	}

	var query string
	var args []any
	if exists {
		query, args = buildUpdate(id, fields, now)
	} else {
		query, args = buildInsert(id, fields, now)
	}

	var affected int64
	err = s.retry.Do(ctx, func() error {
		ct, err := s.pool.Exec(ctx, query, args...)
		affected = ct.RowsAffected()
		return err
	})
	if err != nil {
		s.log.Error("upsert failed", zap.Int("user_id", id), zap.Bool("update", exists), zap.Error(err))
		return Result{OK: false, Message: fmt.Sprintf("write failed: %v", err)}
	}
	if exists && affected == 0 {
		s.log.Warn("update affected no rows", zap.Int("user_id", id))
		return Result{OK: false, Message: "update affected no rows"}
	}

	s.log.Info("candidate persisted",
		zap.Int("user_id", id),
		zap.Bool("update", exists),
		zap.Int("fields", fields.KnownCount()))
	return Result{OK: true, Message: "ok"}
}
