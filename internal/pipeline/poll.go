package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/types"
)

// WaitForJob polls a submitted job until it reaches a terminal state, then
// processes its output. Transient status-check failures are logged and
// retried on the next tick.
func (s *Session) WaitForJob(ctx context.Context, job *types.BatchJob) (Summary, error) {
	log := s.log.With(zap.String("batch_id", job.ExternalID))
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		state, err := s.client.GetStatus(ctx, job.ExternalID)
		switch {
		case err != nil:
			log.Warn("batch status check failed", zap.Error(err))
		case state.Status.Terminal():
			job.Status = state.Status
			job.OutputRef = state.OutputFileID
			return s.finalizeJob(ctx, job, state)
		default:
			job.Status = state.Status
			log.Info("batch in progress",
				zap.String("status", string(state.Status)),
				zap.Int("completed", state.Completed),
				zap.Int("failed", state.Failed),
				zap.Int("total", state.Total))
		}

		select {
		case <-ctx.Done():
			return Summary{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// CheckJob inspects one job by id and processes it if terminal. The job need
// not have been submitted by this session; unknown jobs are processed from
// their output alone, without a member list to reconcile against. The bool
// result reports whether the job was terminal.
func (s *Session) CheckJob(ctx context.Context, batchID string) (Summary, bool, error) {
	state, err := s.client.GetStatus(ctx, batchID)
	if err != nil {
		return Summary{}, false, err
	}

	job := s.LookupJob(batchID)
	if job == nil {
		job = &types.BatchJob{ExternalID: batchID}
	}
	job.Status = state.Status
	job.OutputRef = state.OutputFileID

	if !state.Status.Terminal() {
		s.log.Info("batch not terminal yet",
			zap.String("batch_id", batchID),
			zap.String("status", string(state.Status)),
			zap.Int("completed", state.Completed),
			zap.Int("total", state.Total))
		return Summary{}, false, nil
	}

	summary, err := s.finalizeJob(ctx, job, state)
	return summary, true, err
}

// finalizeJob turns a terminal job into a summary. Completed jobs have their
// output fetched and each item routed through the processing stages; any
// member missing from the output is counted failed. Failed, expired, and
// cancelled jobs report every member failed. Claims stay in place either
// way so a failed record is not immediately re-picked by the next cycle.
func (s *Session) finalizeJob(ctx context.Context, job *types.BatchJob, state llm.BatchState) (Summary, error) {
	log := s.log.With(zap.String("batch_id", job.ExternalID))

	if state.Status != types.BatchCompleted {
		log.Error("batch ended without completing",
			zap.String("status", string(state.Status)),
			zap.Int("records", len(job.MemberIDs)))
		for _, id := range job.MemberIDs {
			s.skip(id)
		}
		return Summary{
			Total:     len(job.MemberIDs),
			Failed:    len(job.MemberIDs),
			FailedIDs: append([]int(nil), job.MemberIDs...),
		}, nil
	}

	if state.OutputFileID == "" {
		return Summary{}, errors.New("completed batch has no output file")
	}

	items, err := s.client.FetchOutput(ctx, state.OutputFileID)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to fetch batch output: %w", err)
	}
	log.Info("processing batch output", zap.Int("items", len(items)))

	summary := s.processOutput(ctx, items)

	// Members the provider never answered for count as failures too.
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if id, err := parsing.ResolveRecordID(item.CustomID); err == nil {
			seen[id] = struct{}{}
		}
	}
	for _, id := range job.MemberIDs {
		if _, ok := seen[id]; !ok {
			log.Error("no batch output for record", zap.Int("user_id", id))
			summary.Total++
			summary.Failed++
			summary.FailedIDs = append(summary.FailedIDs, id)
		}
	}

	log.Info("batch processed",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed))
	return summary, nil
}
