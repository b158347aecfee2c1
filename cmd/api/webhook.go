package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"channel-finance-assistant/config"
	"channel-finance-assistant/pkg/log"
)

const (
	telegramWebhookPath = "/webhook/telegram"

	ngrokAttempts      = 10
	ngrokRetryInterval = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// resolveWebhookURL returns the configured Telegram webhook URL, or discovers
// one through the ngrok local API. Empty means no webhook should be registered.
func resolveWebhookURL(ctx context.Context, cfg config.TelegramConfig, l log.Logger) string {
	if cfg.WebhookURL != "" {
		return cfg.WebhookURL
	}
	if cfg.NgrokAPIURL == "" {
		return ""
	}

	publicURL, err := detectNgrokURL(ctx, &http.Client{Timeout: 5 * time.Second}, cfg.NgrokAPIURL, ngrokRetryInterval)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return ""
	}
	l.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
	return strings.TrimSuffix(publicURL, "/") + telegramWebhookPath
}

// detectNgrokURL polls the ngrok API until a tunnel shows up, preferring HTTPS.
func detectNgrokURL(ctx context.Context, client *http.Client, apiBase string, interval time.Duration) (string, error) {
	endpoint := strings.TrimSuffix(apiBase, "/") + "/api/tunnels"

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}

		url, err := fetchTunnel(ctx, client, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		if url != "" {
			return url, nil
		}
		lastErr = fmt.Errorf("no active tunnels")
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
