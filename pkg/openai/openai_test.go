package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/pkg/openai"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Please share your proof of income."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 8, "total_tokens": 38}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})
	require.NoError(t, err)
	assert.Equal(t, openai.DefaultModel, client.Model())

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		System: "You are a loan officer.",
		Messages: []openai.Message{
			{Role: "system", Content: "Previous conversation summary: asked about rates"},
			{Role: "user", Content: "What documents do I need for a loan?"},
		},
		Temperature: 0.3,
		MaxTokens:   150,
	})
	require.NoError(t, err)

	assert.Equal(t, "Please share your proof of income.", resp.Content)
	assert.Equal(t, 38, resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-3.5-turbo", got["model"])
	assert.InDelta(t, 0.3, got["temperature"], 1e-9)
	assert.EqualValues(t, 150, got["max_completion_tokens"])
	msgs := got["messages"].([]any)
	require.Len(t, msgs, 3)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[2].(map[string]any)["role"])
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "upstream failure", "type": "server_error"}}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "user", Content: "loan?"}},
	})
	assert.Error(t, err)
}

func TestGenerateContent_UnsupportedRole(t *testing.T) {
	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Message{{Role: "tool", Content: "x"}},
	})
	assert.ErrorContains(t, err, "unsupported role")
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := openai.New(openai.Config{})
	assert.Error(t, err)
}
