package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/store"
	"github.com/jonathan/resume-extractor/internal/types"
)

type fakeStore struct {
	records    []types.CandidateRecord
	claimDeny  map[int]bool
	released   [][]int
	upserts    map[int]types.ParsedFieldSet
	upsertFail map[int]bool
}

func (f *fakeStore) SelectClaimable(_ context.Context, _ time.Duration, limit int) []types.CandidateRecord {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit]
}

func (f *fakeStore) MarkClaimed(_ context.Context, ids []int, _ time.Time) []int {
	var won []int
	for _, id := range ids {
		if !f.claimDeny[id] {
			won = append(won, id)
		}
	}
	return won
}

func (f *fakeStore) ReleaseClaims(_ context.Context, ids []int) error {
	f.released = append(f.released, ids)
	return nil
}

func (f *fakeStore) FetchCandidate(_ context.Context, id int) (types.CandidateRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return types.CandidateRecord{}, fmt.Errorf("record %d not found", id)
}

func (f *fakeStore) UpsertFields(_ context.Context, id int, fields types.ParsedFieldSet) store.Result {
	if f.upserts == nil {
		f.upserts = make(map[int]types.ParsedFieldSet)
	}
	f.upserts[id] = fields
	if f.upsertFail[id] {
		return store.Result{Message: "update failed"}
	}
	return store.Result{OK: true, Message: "updated"}
}

type fakeClient struct {
	submitted []llm.BatchItem
	submitErr error
	states    []llm.BatchState
	stateIdx  int
	output    []llm.OutputItem
	fetchErr  error
	completed string
	complErr  error
}

func (f *fakeClient) SubmitBatch(_ context.Context, _ string, items []llm.BatchItem, _ map[string]any) (llm.BatchState, error) {
	if f.submitErr != nil {
		return llm.BatchState{}, f.submitErr
	}
	f.submitted = items
	return llm.BatchState{ID: "batch_test", Status: types.BatchValidating}, nil
}

func (f *fakeClient) GetStatus(_ context.Context, _ string) (llm.BatchState, error) {
	state := f.states[f.stateIdx]
	if f.stateIdx < len(f.states)-1 {
		f.stateIdx++
	}
	return state, nil
}

func (f *fakeClient) FetchOutput(_ context.Context, _ string) ([]llm.OutputItem, error) {
	return f.output, f.fetchErr
}

func (f *fakeClient) Complete(_ context.Context, _ []openai.ChatCompletionMessage) (string, error) {
	return f.completed, f.complErr
}

func testConfig() *config.Config {
	return &config.Config{
		Model:          "gpt-4o-mini-2024-07-18",
		MaxTokens:      16000,
		BatchSize:      10,
		Workers:        2,
		PollInterval:   time.Millisecond,
		RequestsPerMin: 6000,
		ClaimWindow:    72 * time.Hour,
		Interval:       time.Millisecond,
		MaxCategories:  3,
	}
}

func newTestSession(st Store, client llm.Client) *Session {
	return NewSession(testConfig(), st, client, nil, zap.NewNop())
}

const sampleResponse = "First Name: Jane\n" +
	"Last Name: Rivera\n" +
	"City: Austin\n" +
	"Most Recent Company Worked for: Acme Corp\n"

func testRecords() []types.CandidateRecord {
	return []types.CandidateRecord{
		{ID: 101, ResumeText: "Jane Rivera\nDatabase Administrator\nAustin, TX"},
		{ID: 102, ResumeText: "Sam Okafor\nNetwork Engineer\nDenver, CO"},
		{ID: 103, ResumeText: "Ana Silva\nData Analyst\nMiami, FL"},
	}
}

func TestSubmitBatch(t *testing.T) {
	st := &fakeStore{records: testRecords(), claimDeny: map[int]bool{102: true}}
	client := &fakeClient{}
	s := newTestSession(st, client)

	job, err := s.SubmitBatch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, job)

	// The lost claim is dropped from the batch, not fatal.
	assert.Equal(t, []int{101, 103}, job.MemberIDs)
	assert.Equal(t, "batch_test", job.ExternalID)

	require.Len(t, client.submitted, 2)
	assert.Equal(t, "user_101", client.submitted[0].CustomID)
	assert.Equal(t, "user_103", client.submitted[1].CustomID)
	assert.Contains(t, client.submitted[0].Messages[0].Content, "Jane Rivera")

	assert.Same(t, job, s.LookupJob("batch_test"))
	assert.Empty(t, st.released)
}

func TestSubmitBatchNoWork(t *testing.T) {
	s := newTestSession(&fakeStore{}, &fakeClient{})

	job, err := s.SubmitBatch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestSubmitBatchSubmissionErrorReleasesClaims(t *testing.T) {
	st := &fakeStore{records: testRecords()}
	client := &fakeClient{submitErr: errors.New("upload rejected")}
	s := newTestSession(st, client)

	_, err := s.SubmitBatch(context.Background())
	require.Error(t, err)
	require.Len(t, st.released, 1)
	assert.Equal(t, []int{101, 102, 103}, st.released[0])
}

func TestWaitForJobCompleted(t *testing.T) {
	st := &fakeStore{}
	client := &fakeClient{
		states: []llm.BatchState{
			{ID: "batch_test", Status: types.BatchInProgress, Total: 3, Completed: 1},
			{ID: "batch_test", Status: types.BatchCompleted, OutputFileID: "file_1", Total: 3, Completed: 2, Failed: 1},
		},
		output: []llm.OutputItem{
			{CustomID: "user_101", StatusCode: 200, Content: sampleResponse},
			{CustomID: "user_102", StatusCode: 500},
		},
	}
	s := newTestSession(st, client)
	job := &types.BatchJob{ExternalID: "batch_test", MemberIDs: []int{101, 102, 103}}

	summary, err := s.WaitForJob(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	assert.ElementsMatch(t, []int{102, 103}, summary.FailedIDs)

	require.Contains(t, st.upserts, 101)
	assert.Equal(t, "Jane", st.upserts[101].Value("FirstName"))
	assert.Equal(t, "Acme Corp", st.upserts[101].Value("MostRecentCompany"))

	// Claims stay in place on per-record failure.
	assert.Empty(t, st.released)
	assert.Equal(t, types.BatchCompleted, job.Status)
}

func TestWaitForJobFailedBatch(t *testing.T) {
	st := &fakeStore{records: testRecords()[:2]}
	client := &fakeClient{
		states: []llm.BatchState{{ID: "batch_test", Status: types.BatchFailed}},
	}
	s := newTestSession(st, client)
	job := &types.BatchJob{ExternalID: "batch_test", MemberIDs: []int{101, 102}}

	summary, err := s.WaitForJob(context.Background(), job)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Failed)
	assert.ElementsMatch(t, []int{101, 102}, summary.FailedIDs)
	assert.Empty(t, st.upserts)
	assert.Empty(t, st.released)

	// Members of a dead batch are skipped for the rest of the session.
	job2, err := s.SubmitBatch(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job2)
}

func TestCheckJobNotTerminal(t *testing.T) {
	client := &fakeClient{
		states: []llm.BatchState{{ID: "batch_test", Status: types.BatchInProgress}},
	}
	s := newTestSession(&fakeStore{}, client)

	_, done, err := s.CheckJob(context.Background(), "batch_test")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestCheckJobUnknownJob(t *testing.T) {
	// A job submitted by an earlier run can still be checked: results are
	// processed from the output file alone.
	st := &fakeStore{}
	client := &fakeClient{
		states: []llm.BatchState{{ID: "batch_old", Status: types.BatchCompleted, OutputFileID: "file_9"}},
		output: []llm.OutputItem{{CustomID: "unified_77", StatusCode: 200, Content: sampleResponse}},
	}
	s := newTestSession(st, client)

	summary, done, err := s.CheckJob(context.Background(), "batch_old")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Contains(t, st.upserts, 77)
}

func TestProcessOutput(t *testing.T) {
	st := &fakeStore{upsertFail: map[int]bool{103: true}}
	s := newTestSession(st, &fakeClient{})

	summary := s.processOutput(context.Background(), []llm.OutputItem{
		{CustomID: "user_101", StatusCode: 200, Content: sampleResponse},
		{CustomID: "no-digits-here", StatusCode: 200, Content: sampleResponse},
		{CustomID: "user_103", StatusCode: 200, Content: sampleResponse},
		{CustomID: "user_104", StatusCode: 200, Content: "nothing parseable"},
	})

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 3, summary.Failed)
	assert.ElementsMatch(t, []int{103, 104}, summary.FailedIDs)
	assert.Equal(t, []string{"no-digits-here"}, summary.Unresolved)
	assert.Equal(t, summary.Failed, len(summary.FailedIDs)+len(summary.Unresolved))
}

func TestProcessUser(t *testing.T) {
	st := &fakeStore{records: testRecords()}
	client := &fakeClient{completed: sampleResponse}
	s := newTestSession(st, client)

	require.NoError(t, s.ProcessUser(context.Background(), 101))
	require.Contains(t, st.upserts, 101)
	assert.Equal(t, "Rivera", st.upserts[101].Value("LastName"))

	assert.Error(t, s.ProcessUser(context.Background(), 999))
}

func TestProcessUserCompletionError(t *testing.T) {
	st := &fakeStore{records: testRecords()}
	client := &fakeClient{complErr: errors.New("rate limited")}
	s := newTestSession(st, client)

	err := s.ProcessUser(context.Background(), 101)
	require.Error(t, err)
	assert.Empty(t, st.upserts)
}
