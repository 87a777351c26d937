package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jonathan/resume-extractor/internal/types"
)

// BatchItem is one chat request in a batch upload.
type BatchItem struct {
	CustomID string
	Messages []openai.ChatCompletionMessage
}

// BatchState is a provider-agnostic snapshot of a batch job.
type BatchState struct {
	ID           string
	Status       types.BatchStatus
	OutputFileID string
	ErrorFileID  string
	Total        int
	Completed    int
	Failed       int
}

// OutputItem is one decoded line of a batch output file.
type OutputItem struct {
	CustomID   string
	StatusCode int
	Content    string
	Err        string
}

// OK reports whether the item carries a usable completion.
func (o OutputItem) OK() bool {
	return o.Err == "" && o.StatusCode >= 200 && o.StatusCode < 300 && o.Content != ""
}

// outputLine is the wire shape of one batch output record.
type outputLine struct {
	CustomID string `json:"custom_id"`
	Response *struct {
		StatusCode int                           `json:"status_code"`
		Body       openai.ChatCompletionResponse `json:"body"`
	} `json:"response"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// DecodeOutput reads a JSONL batch output stream. Items with a non-2xx
// status or a populated error object come back with Err set so the caller
// can report them per record instead of failing the whole batch.
func DecodeOutput(r io.Reader) ([]OutputItem, error) {
	dec := json.NewDecoder(r)
	var items []OutputItem
	for {
		var line outputLine
		if err := dec.Decode(&line); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return items, fmt.Errorf("failed to decode batch output line %d: %w", len(items)+1, err)
		}

		item := OutputItem{CustomID: line.CustomID}
		if line.Error != nil && line.Error.Message != "" {
			item.Err = line.Error.Message
		}
		if line.Response != nil {
			item.StatusCode = line.Response.StatusCode
			if len(line.Response.Body.Choices) > 0 {
				item.Content = line.Response.Body.Choices[0].Message.Content
			}
		}
		items = append(items, item)
	}
	return items, nil
}
