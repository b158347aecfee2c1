package http

import (
	"github.com/gin-gonic/gin"

	"channel-finance-assistant/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Both are rate limited per client.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
	r.POST("/clear/:session_id", mw.RateLimit(), h.Clear)
}
