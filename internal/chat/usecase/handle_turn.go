package usecase

import (
	"context"
	"fmt"
	"strings"

	"channel-finance-assistant/internal/chat"
	"channel-finance-assistant/internal/history"
	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
	"channel-finance-assistant/pkg/llmprovider"
)

func (uc *implUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) chat.TurnOutput {
	output := chat.TurnOutput{SessionID: input.SessionID}

	verdict := uc.filter.FilterInput(input.Message)
	if !verdict.Accepted {
		uc.l.Infof(ctx, "chat.HandleTurn: session=%s refused rule=%s user=%q assistant=%q",
			input.SessionID, verdict.Rule, input.Message, verdict.Text)
		output.Reply = verdict.Text
		output.Status = chat.StatusRefused
		output.Rule = verdict.Rule
		return output
	}

	res := uc.answer(ctx, input.SessionID, verdict.Text)
	if res.err != nil {
		uc.l.Errorf(ctx, "chat.HandleTurn.%s: session=%s err=%v", res.stage, input.SessionID, res.err)
		output.Reply = ApologyMessage
		output.Status = chat.StatusFailed
		return output
	}

	output.Reply = res.reply
	output.Status = chat.StatusAnswered
	return output
}

// answer runs every step after input filtering. The session is written only
// by its final step, so any earlier failure leaves it untouched.
func (uc *implUseCase) answer(ctx context.Context, sessionID, message string) (res outcome) {
	defer func() {
		if r := recover(); r != nil {
			res = outcome{stage: stagePanic, err: fmt.Errorf("%w: %v", chat.ErrPanic, r)}
		}
	}()

	if sessionID == "" {
		return outcome{stage: stageValidate, err: session.ErrEmptySessionID}
	}

	h := uc.formatter.Format(ctx, sessionID)
	req := uc.buildRequest(h, message)

	genCtx, cancel := context.WithTimeout(ctx, uc.cfg.RequestTimeout)
	defer cancel()

	resp, err := uc.gen.GenerateContent(genCtx, req)
	if err != nil {
		return outcome{stage: stageGenerate, err: err}
	}
	raw := strings.TrimSpace(resp.Text())
	if raw == "" {
		return outcome{stage: stageGenerate, err: chat.ErrEmptyReply}
	}

	reply := uc.filter.FilterOutput(raw)
	uc.l.Infof(ctx, "chat.HandleTurn: session=%s provider=%s user=%q assistant=%q",
		sessionID, resp.ProviderName, message, reply)

	err = uc.repo.Append(ctx, sessionID,
		model.NewTurn(model.RoleUser, message),
		model.NewTurn(model.RoleAssistant, reply),
	)
	if err != nil {
		return outcome{stage: stageAppend, err: err}
	}

	return outcome{reply: reply}
}

func (uc *implUseCase) buildRequest(h history.History, message string) *llmprovider.Request {
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem, uc.cfg.SystemPrompt)
	messages := append(h.Messages(), llmprovider.NewTextMessage(llmprovider.RoleUser, message))
	return &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
	}
}
