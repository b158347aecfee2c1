package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"channel-finance-assistant/internal/chat"
	pkgLog "channel-finance-assistant/pkg/log"
	pkgResponse "channel-finance-assistant/pkg/response"
	pkgTelegram "channel-finance-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers in a background goroutine, since the
// model call can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestIDFromContext(ctx)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		// Detach from the request context, which is cancelled once we respond.
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failedMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	sessionID := sessionIDFor(msg.Chat.ID)

	switch command(text) {
	case commandStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, welcomeMessage, pkgTelegram.ParseModeMarkdown)
	case commandHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, helpMessage, pkgTelegram.ParseModeMarkdown)
	case commandClear:
		if err := h.uc.Clear(ctx, sessionID); err != nil {
			return fmt.Errorf("clear %s: %w", sessionID, err)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, clearedMessage)
	}

	out := h.uc.HandleTurn(ctx, chat.TurnInput{
		SessionID: sessionID,
		Message:   text,
	})
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}

func sessionIDFor(chatID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, chatID)
}

// command returns the bot command of text, dropping any @botname suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd)
}
