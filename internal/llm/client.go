package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Client is an abstraction over the model provider's chat and batch APIs.
type Client interface {
	// SubmitBatch uploads the items as a JSONL input file and creates a
	// batch job over it. Returns the provider's view of the new job.
	SubmitBatch(ctx context.Context, fileName string, items []BatchItem, metadata map[string]any) (BatchState, error)
	// GetStatus retrieves the current state of a batch job.
	GetStatus(ctx context.Context, batchID string) (BatchState, error)
	// FetchOutput downloads and decodes a batch output file.
	FetchOutput(ctx context.Context, fileID string) ([]OutputItem, error)
	// Complete runs a single synchronous chat completion and returns the
	// assistant message text.
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

// Options controls request construction for the OpenAI client.
type Options struct {
	Model            string
	MaxTokens        int
	Temperature      float32
	CompletionWindow string
}

// DefaultOptions returns the parameters used when none are configured.
func DefaultOptions() Options {
	return Options{
		Model:            "gpt-4o-mini-2024-07-18",
		MaxTokens:        16000,
		CompletionWindow: "24h",
	}
}

// OpenAIClient implements Client on the OpenAI chat and batch endpoints.
type OpenAIClient struct {
	api  *openai.Client
	opts Options
}

// NewOpenAIClient creates a client for the given API key.
func NewOpenAIClient(apiKey string, opts Options) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	defaults := DefaultOptions()
	if opts.Model == "" {
		opts.Model = defaults.Model
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaults.MaxTokens
	}
	if opts.CompletionWindow == "" {
		opts.CompletionWindow = defaults.CompletionWindow
	}
	return &OpenAIClient{api: openai.NewClient(apiKey), opts: opts}, nil
}

// SubmitBatch uploads one chat request per item and creates a batch over the
// uploaded file in a single call.
func (c *OpenAIClient) SubmitBatch(ctx context.Context, fileName string, items []BatchItem, metadata map[string]any) (BatchState, error) {
	if len(items) == 0 {
		return BatchState{}, errors.New("no items to submit")
	}

	upload := openai.UploadBatchFileRequest{FileName: fileName}
	for _, item := range items {
		upload.AddChatCompletion(item.CustomID, c.chatRequest(item.Messages))
	}

	resp, err := c.api.CreateBatchWithUploadFile(ctx, openai.CreateBatchWithUploadFileRequest{
		Endpoint:               openai.BatchEndpointChatCompletions,
		CompletionWindow:       c.opts.CompletionWindow,
		Metadata:               metadata,
		UploadBatchFileRequest: upload,
	})
	if err != nil {
		return BatchState{}, fmt.Errorf("failed to create batch: %w", err)
	}
	return stateFromBatch(resp.Batch), nil
}

// GetStatus retrieves the current state of a batch job.
func (c *OpenAIClient) GetStatus(ctx context.Context, batchID string) (BatchState, error) {
	resp, err := c.api.RetrieveBatch(ctx, batchID)
	if err != nil {
		return BatchState{}, fmt.Errorf("failed to retrieve batch %s: %w", batchID, err)
	}
	return stateFromBatch(resp.Batch), nil
}

// FetchOutput downloads a batch output file and decodes its JSONL content.
func (c *OpenAIClient) FetchOutput(ctx context.Context, fileID string) ([]OutputItem, error) {
	raw, err := c.api.GetFileContent(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch output file %s: %w", fileID, err)
	}
	defer raw.Close()
	return DecodeOutput(raw)
}

// Complete runs one synchronous chat completion.
func (c *OpenAIClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, c.chatRequest(messages))
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) chatRequest(messages []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model:       c.opts.Model,
		Messages:    messages,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	}
}

func stateFromBatch(b openai.Batch) BatchState {
	state := BatchState{
		ID:        b.ID,
		Status:    types.BatchStatus(b.Status),
		Total:     b.RequestCounts.Total,
		Completed: b.RequestCounts.Completed,
		Failed:    b.RequestCounts.Failed,
	}
	if b.OutputFileID != nil {
		state.OutputFileID = *b.OutputFileID
	}
	if b.ErrorFileID != nil {
		state.ErrorFileID = *b.ErrorFileID
	}
	return state
}
