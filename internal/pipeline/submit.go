package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/types"
)

// SubmitBatch selects claimable records, marks them claimed, and submits one
// batch job covering every record whose claim succeeded. Claims are marked
// before anything is uploaded so a concurrent runner cannot double-submit
// the same record. Returns nil when there is no work.
func (s *Session) SubmitBatch(ctx context.Context) (*types.BatchJob, error) {
	candidates := s.store.SelectClaimable(ctx, s.cfg.ClaimWindow, s.cfg.BatchSize)

	records := candidates[:0:0]
	for _, rec := range candidates {
		if s.isSkipped(rec.ID) {
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		s.log.Info("no claimable records")
		return nil, nil
	}

	ids := make([]int, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}

	claimed := s.store.MarkClaimed(ctx, ids, s.now())
	if len(claimed) == 0 {
		s.log.Warn("no claims won, skipping batch", zap.Int("candidates", len(ids)))
		return nil, nil
	}
	if len(claimed) < len(ids) {
		s.log.Warn("some claims lost, submitting without them",
			zap.Int("requested", len(ids)), zap.Int("claimed", len(claimed)))
	}

	claimedSet := make(map[int]struct{}, len(claimed))
	for _, id := range claimed {
		claimedSet[id] = struct{}{}
	}

	members := make([]types.CandidateRecord, 0, len(claimed))
	for _, rec := range records {
		if _, ok := claimedSet[rec.ID]; ok {
			members = append(members, rec)
		}
	}

	// Prompt preparation runs the taxonomy matcher over each resume, which
	// is regex-heavy. Fan it out over the worker pool.
	items := make([]llm.BatchItem, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, rec := range members {
		i, rec := i, rec
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			items[i] = llm.BatchItem{
				CustomID: fmt.Sprintf("user_%d", rec.ID),
				Messages: llm.BuildMessages(rec.ResumeText, s.taxonomyContext(rec.ResumeText)),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.releaseClaims(ctx, claimed)
		return nil, fmt.Errorf("failed to prepare batch requests: %w", err)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.releaseClaims(ctx, claimed)
		return nil, err
	}

	fileName := fmt.Sprintf("batch_input_%s.jsonl", s.now().Format("20060102_150405"))
	state, err := s.client.SubmitBatch(ctx, fileName, items, map[string]any{"session_id": s.id})
	if err != nil {
		s.releaseClaims(ctx, claimed)
		return nil, fmt.Errorf("batch submission failed: %w", err)
	}

	job := &types.BatchJob{
		ExternalID:  state.ID,
		MemberIDs:   claimed,
		Status:      state.Status,
		SubmittedAt: s.now(),
	}
	s.registerJob(job)

	s.log.Info("batch submitted",
		zap.String("batch_id", job.ExternalID),
		zap.Int("records", len(job.MemberIDs)),
		zap.String("status", string(job.Status)))
	return job, nil
}

// releaseClaims frees claims after a submission that never reached the
// provider. Claims on submitted jobs are never released, even when the job
// later fails; those records surface in the failure summary instead.
func (s *Session) releaseClaims(ctx context.Context, ids []int) {
	if err := s.store.ReleaseClaims(ctx, ids); err != nil {
		s.log.Error("failed to release claims", zap.Ints("user_ids", ids), zap.Error(err))
	}
}
