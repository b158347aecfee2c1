package qwen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/pkg/qwen"
)

func TestNew_Defaults(t *testing.T) {
	_, err := qwen.New(qwen.Config{})
	assert.ErrorIs(t, err, qwen.ErrMissingAPIKey)

	client, err := qwen.New(qwen.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, qwen.DefaultModel, client.Model())
}

func TestGenerateContent_SummaryRequest(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer dashscope-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-q1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "User asked about home loan rates and eligibility."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 40, "completion_tokens": 9, "total_tokens": 49}
		}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "dashscope-key", BaseURL: ts.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		System:      "Summarize the conversation in two sentences.",
		Messages:    []qwen.Message{{Role: "user", Content: "user: home loan rates?\nassistant: around 8.5 percent"}},
		Temperature: 0,
		MaxTokens:   120,
	})
	require.NoError(t, err)

	assert.Equal(t, "User asked about home loan rates and eligibility.", resp.Content)
	assert.Equal(t, 49, resp.Usage.TotalTokens)

	assert.Equal(t, qwen.DefaultModel, got["model"])
	assert.Equal(t, false, got["enable_thinking"])
	temp, ok := got["temperature"]
	assert.True(t, ok, "zero temperature must be sent explicitly")
	assert.EqualValues(t, 0, temp)
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
}

func TestGenerateContent_ErrorNamesProvider(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "model not found", "type": "invalid_request_error"}}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &qwen.Request{
		Messages: []qwen.Message{{Role: "user", Content: "hi"}},
	})
	assert.ErrorContains(t, err, "qwen: chat completion failed")
}
