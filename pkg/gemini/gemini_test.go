package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/pkg/gemini"
)

// fakeGemini answers generateContent calls and records the last request body.
func fakeGemini(t *testing.T, body *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			http.Error(w, `{"error":{"code":401,"message":"bad key","status":"UNAUTHENTICATED"}}`, http.StatusUnauthorized)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "Bring two recent payslips."}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{
				"promptTokenCount":     21,
				"candidatesTokenCount": 6,
				"totalTokenCount":      27,
			},
			"modelVersion": "gemini-test-001",
		})
	}))
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, client.Model())
}

func TestGenerateContent_ChatReply(t *testing.T) {
	var body map[string]any
	srv := fakeGemini(t, &body)
	defer srv.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		System: "You are a loan officer.",
		Turns: []gemini.Turn{
			{Text: "Hi"},
			{Assistant: true, Text: "Hello, how can I help?"},
			{Text: "What do I need for a personal loan?"},
		},
		Temperature: 0,
		MaxTokens:   150,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bring two recent payslips.", resp.Text)
	assert.Equal(t, "gemini-test-001", resp.Model)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 27, resp.Usage.TotalTokens)

	contents := body["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
	assert.Contains(t, body, "systemInstruction")

	gen := body["generationConfig"].(map[string]any)
	temp, ok := gen["temperature"]
	assert.True(t, ok, "zero temperature must be sent explicitly")
	assert.EqualValues(t, 0, temp)
	assert.EqualValues(t, 150, gen["maxOutputTokens"])
}

func TestGenerateContent_APIError(t *testing.T) {
	var body map[string]any
	srv := fakeGemini(t, &body)
	defer srv.Close()

	client, err := gemini.New(gemini.Config{APIKey: "wrong", Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &gemini.Request{
		Turns: []gemini.Turn{{Text: "loan?"}},
	})
	assert.ErrorContains(t, err, "gemini: generate content")
}
