package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/llm"
)

// Run executes one full cycle: claim, submit, wait, process. A cycle with no
// claimable work returns an empty summary and no error.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	job, err := s.SubmitBatch(ctx)
	if err != nil {
		return Summary{}, err
	}
	if job == nil {
		return Summary{}, nil
	}
	return s.WaitForJob(ctx, job)
}

// RunContinuous repeats Run with the configured interval between cycles
// until the context is cancelled. Cycle errors are logged, not fatal.
func (s *Session) RunContinuous(ctx context.Context) error {
	for {
		start := s.now()
		summary, err := s.Run(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.log.Error("batch run failed", zap.Error(err))
		default:
			s.log.Info("batch run complete",
				zap.Int("total", summary.Total),
				zap.Int("succeeded", summary.Succeeded),
				zap.Int("failed", summary.Failed),
				zap.Duration("elapsed", s.now().Sub(start)))
		}

		s.log.Info("waiting until next run", zap.Duration("interval", s.cfg.Interval))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.Interval):
		}
	}
}

// ProcessUser extracts a single record synchronously, outside the batch
// flow. Used for reprocessing and debugging individual records.
func (s *Session) ProcessUser(ctx context.Context, id int) error {
	rec, err := s.store.FetchCandidate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch record %d: %w", id, err)
	}
	if rec.ResumeText == "" {
		return fmt.Errorf("record %d has no resume text", id)
	}

	messages := llm.BuildMessages(rec.ResumeText, s.taxonomyContext(rec.ResumeText))
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	responseText, err := s.client.Complete(ctx, messages)
	if err != nil {
		return fmt.Errorf("completion failed for record %d: %w", id, err)
	}

	if !s.processRecord(ctx, id, responseText) {
		return fmt.Errorf("processing failed for record %d", id)
	}
	s.log.Info("record processed", zap.Int("user_id", id))
	return nil
}
