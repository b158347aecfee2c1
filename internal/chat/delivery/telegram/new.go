package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"channel-finance-assistant/internal/chat"
	pkgLog "channel-finance-assistant/pkg/log"
	pkgTelegram "channel-finance-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until in-flight background replies finish or ctx is done.
	Wait(ctx context.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot pkgTelegram.IBot
	wg  sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot pkgTelegram.IBot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
