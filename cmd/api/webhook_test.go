package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/config"
	"channel-finance-assistant/pkg/log"
)

func TestDetectNgrokURL(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Write([]byte(`{"tunnels": []}`))
			return
		}
		w.Write([]byte(`{"tunnels": [
			{"public_url": "http://abc.ngrok.app", "proto": "http"},
			{"public_url": "https://abc.ngrok.app", "proto": "https"}
		]}`))
	}))
	defer ts.Close()

	url, err := detectNgrokURL(context.Background(), ts.Client(), ts.URL, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "https://abc.ngrok.app", url)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDetectNgrokURL_GivesUp(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tunnels": []}`))
	}))
	defer ts.Close()

	_, err := detectNgrokURL(context.Background(), ts.Client(), ts.URL, time.Millisecond)
	assert.ErrorContains(t, err, "no active tunnels")
}

func TestResolveWebhookURL(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	assert.Equal(t, "https://bot.example/webhook/telegram",
		resolveWebhookURL(ctx, config.TelegramConfig{WebhookURL: "https://bot.example/webhook/telegram"}, l))
	assert.Empty(t, resolveWebhookURL(ctx, config.TelegramConfig{}, l))
}
