package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestDecodeOutput(t *testing.T) {
	payload := `{"id":"batch_req_1","custom_id":"user_101","response":{"status_code":200,"body":{"choices":[{"message":{"role":"assistant","content":"First Name: Jane"}}]}},"error":null}
{"id":"batch_req_2","custom_id":"user_102","response":{"status_code":500,"body":{}},"error":null}
{"id":"batch_req_3","custom_id":"user_103","response":null,"error":{"code":"rate_limit_exceeded","message":"Rate limit reached"}}
`

	items, err := DecodeOutput(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "user_101", items[0].CustomID)
	assert.Equal(t, 200, items[0].StatusCode)
	assert.Equal(t, "First Name: Jane", items[0].Content)
	assert.True(t, items[0].OK())

	assert.Equal(t, "user_102", items[1].CustomID)
	assert.Equal(t, 500, items[1].StatusCode)
	assert.False(t, items[1].OK())

	assert.Equal(t, "user_103", items[2].CustomID)
	assert.Equal(t, "Rate limit reached", items[2].Err)
	assert.False(t, items[2].OK())
}

func TestDecodeOutputEmpty(t *testing.T) {
	items, err := DecodeOutput(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDecodeOutputMalformed(t *testing.T) {
	payload := `{"custom_id":"user_1","response":{"status_code":200,"body":{"choices":[{"message":{"content":"ok"}}]}}}
not json at all`

	items, err := DecodeOutput(strings.NewReader(payload))
	require.Error(t, err)
	// The well-formed prefix is still returned.
	require.Len(t, items, 1)
	assert.Equal(t, "user_1", items[0].CustomID)
}

func TestOutputItemOK(t *testing.T) {
	tests := []struct {
		name string
		item OutputItem
		want bool
	}{
		{"success", OutputItem{StatusCode: 200, Content: "text"}, true},
		{"empty content", OutputItem{StatusCode: 200}, false},
		{"server error", OutputItem{StatusCode: 500, Content: "text"}, false},
		{"request error", OutputItem{StatusCode: 200, Content: "text", Err: "boom"}, false},
		{"zero value", OutputItem{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.OK())
		})
	}
}

func TestNewOpenAIClient(t *testing.T) {
	_, err := NewOpenAIClient("", Options{})
	require.Error(t, err)

	client, err := NewOpenAIClient("sk-test", Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions().Model, client.opts.Model)
	assert.Equal(t, DefaultOptions().MaxTokens, client.opts.MaxTokens)
	assert.Equal(t, "24h", client.opts.CompletionWindow)

	client, err = NewOpenAIClient("sk-test", Options{Model: "gpt-4o", MaxTokens: 512, CompletionWindow: "24h"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.opts.Model)
	assert.Equal(t, 512, client.opts.MaxTokens)
}

func TestBatchStateTerminal(t *testing.T) {
	assert.True(t, BatchState{Status: types.BatchCompleted}.Status.Terminal())
	assert.True(t, BatchState{Status: types.BatchExpired}.Status.Terminal())
	assert.False(t, BatchState{Status: types.BatchInProgress}.Status.Terminal())
	// Unknown vendor statuses keep the poller alive.
	assert.False(t, BatchState{Status: types.BatchStatus("cancelling")}.Status.Terminal())
}
