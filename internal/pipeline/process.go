package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/sanitize"
)

// processOutput routes every decoded batch item through the processing
// stages. Per-item failures never abort the batch.
func (s *Session) processOutput(ctx context.Context, items []llm.OutputItem) Summary {
	var summary Summary
	for _, item := range items {
		summary.Total++

		id, err := parsing.ResolveRecordID(item.CustomID)
		if err != nil {
			s.log.Error("unresolvable custom id",
				zap.String("custom_id", item.CustomID), zap.Error(err))
			summary.Failed++
			summary.Unresolved = append(summary.Unresolved, item.CustomID)
			continue
		}

		if !item.OK() {
			s.log.Error("batch item failed",
				zap.Int("user_id", id),
				zap.Int("status_code", item.StatusCode),
				zap.String("error", item.Err))
			summary.Failed++
			summary.FailedIDs = append(summary.FailedIDs, id)
			s.skip(id)
			continue
		}

		if s.processRecord(ctx, id, item.Content) {
			summary.Succeeded++
		} else {
			summary.Failed++
			summary.FailedIDs = append(summary.FailedIDs, id)
			s.skip(id)
		}
	}
	return summary
}

// processRecord runs the parse → enhance → sanitize → persist stages for one
// model response.
func (s *Session) processRecord(ctx context.Context, id int, responseText string) bool {
	log := s.log.With(zap.Int("user_id", id))

	fields := parsing.ParseResponse(responseText, log)
	if fields.KnownCount() == 0 {
		log.Error("response yielded no fields")
		return false
	}
	log.Info("parsed response", zap.Int("fields", fields.KnownCount()))

	parsing.ApplyRankedSkills(fields, parsing.RankedSkills(fields))
	dates.EnhanceExperienceFields(fields, s.now(), log)
	sanitize.Apply(fields, log)

	result := s.store.UpsertFields(ctx, id, fields)
	if !result.OK {
		log.Error("record update failed", zap.String("reason", result.Message))
		return false
	}
	return true
}
