// Package pipeline provides the high-level orchestration for resume
// extraction: claiming work, submitting batch jobs, polling them, and
// routing completed output through parsing, enhancement, and persistence.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/jonathan/resume-extractor/internal/taxonomy"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Store is the persistence surface the pipeline needs. *store.Store
// implements it; tests substitute a fake.
type Store interface {
	SelectClaimable(ctx context.Context, window time.Duration, limit int) []types.CandidateRecord
	MarkClaimed(ctx context.Context, ids []int, ts time.Time) []int
	ReleaseClaims(ctx context.Context, ids []int) error
	FetchCandidate(ctx context.Context, id int) (types.CandidateRecord, error)
	UpsertFields(ctx context.Context, id int, fields types.ParsedFieldSet) store.Result
}

// Summary reports the outcome of one processed batch. Every failure lands in
// FailedIDs or, when the item's custom id could not be mapped to a record,
// in Unresolved, so Failed == len(FailedIDs) + len(Unresolved).
type Summary struct {
	Total      int
	Succeeded  int
	Failed     int
	FailedIDs  []int
	Unresolved []string
}

// Session scopes one pipeline run: it owns the job registry, the rate
// limiter, and the set of record ids skipped during this session. Sessions
// are safe for use from a single goroutine; the submit worker pool
// synchronizes internally.
type Session struct {
	id      string
	cfg     *config.Config
	log     *zap.Logger
	store   Store
	client  llm.Client
	tax     *taxonomy.Taxonomy
	limiter *rate.Limiter
	jobs    *cache.Cache
	skipped map[int]struct{}
	now     func() time.Time
}

// jobRegistryTTL outlives the 24h completion window so a job can still be
// checked shortly after it expires on the provider side.
const jobRegistryTTL = 26 * time.Hour

// NewSession wires a session from its dependencies. The taxonomy may be nil
// when no taxonomy file is available; prompts are then built without a
// taxonomy context block.
func NewSession(cfg *config.Config, st Store, client llm.Client, tax *taxonomy.Taxonomy, log *zap.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		cfg:     cfg,
		log:     log.With(zap.String("session_id", id)),
		store:   st,
		client:  client,
		tax:     tax,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), 1),
		jobs:    cache.New(jobRegistryTTL, time.Hour),
		skipped: make(map[int]struct{}),
		now:     time.Now,
	}
}

// ID returns the session identifier attached to batch metadata and logs.
func (s *Session) ID() string { return s.id }

func (s *Session) registerJob(job *types.BatchJob) {
	s.jobs.Set(job.ExternalID, job, cache.DefaultExpiration)
}

// LookupJob returns a previously submitted job by its external id, or nil.
func (s *Session) LookupJob(batchID string) *types.BatchJob {
	if v, ok := s.jobs.Get(batchID); ok {
		return v.(*types.BatchJob)
	}
	return nil
}

func (s *Session) skip(id int) {
	s.skipped[id] = struct{}{}
}

func (s *Session) isSkipped(id int) bool {
	_, ok := s.skipped[id]
	return ok
}

// taxonomyContext builds the taxonomy reference block for one resume.
func (s *Session) taxonomyContext(resumeText string) string {
	if s.tax == nil {
		return ""
	}
	return s.tax.Context(resumeText, s.cfg.MaxCategories)
}
