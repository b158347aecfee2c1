package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"channel-finance-assistant/internal/session"
	"channel-finance-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Filters the message, asks the assistant and returns the reply with the session history.
// @Description A missing session_id starts a new session whose id is returned.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	out := h.uc.HandleTurn(ctx, req.toInput())

	turns, err := h.uc.History(ctx, out.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat.History: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(out, turns))
}

// Clear godoc
// @Summary     Clear a session
// @Description Empties the conversation history of the given session.
// @Tags        Chat
// @Produce     json
// @Param       session_id path     string true "Session ID"
// @Success     200        {object} clearResp
// @Failure     400        {object} response.Resp "Bad Request"
// @Failure     500        {object} response.Resp "Internal Server Error"
// @Router      /clear/{session_id} [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Clear(ctx, sessionID); err != nil {
		if errors.Is(err, session.ErrEmptySessionID) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat.delivery.http.Clear: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newClearResp())
}
