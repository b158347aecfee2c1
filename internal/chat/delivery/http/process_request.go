package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"channel-finance-assistant/internal/session"
)

// processChatReq binds the chat body and assigns a session id when the client sent none.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

// processClearReq reads the path id. A blank id is rejected before it
// reaches the store.
func (h *handler) processClearReq(c *gin.Context) (string, error) {
	sessionID := strings.TrimSpace(c.Param("session_id"))
	if sessionID == "" {
		return "", session.ErrEmptySessionID
	}
	return sessionID, nil
}
