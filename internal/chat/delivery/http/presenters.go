package http

import (
	"channel-finance-assistant/internal/chat"
	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r chatReq) toInput() chat.TurnInput {
	return chat.TurnInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type messageResp struct {
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type chatResp struct {
	Response  string        `json:"response"`
	History   []messageResp `json:"history"`
	SessionID string        `json:"session_id"`
	Status    string        `json:"status"`
}

func (h *handler) newChatResp(out chat.TurnOutput, turns []model.Turn) chatResp {
	history := make([]messageResp, len(turns))
	for i, t := range turns {
		history[i] = messageResp{
			Role:      string(t.Role),
			Content:   t.Content,
			CreatedAt: response.DateTime(t.CreatedAt),
		}
	}
	return chatResp{
		Response:  out.Reply,
		History:   history,
		SessionID: out.SessionID,
		Status:    string(out.Status),
	}
}

type clearResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *handler) newClearResp() clearResp {
	return clearResp{
		Status:  "success",
		Message: "Chat history cleared",
	}
}
