package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/internal/chat"
	"channel-finance-assistant/internal/chat/delivery/telegram"
	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/internal/session"
	pkgTelegram "channel-finance-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	mu       sync.Mutex
	inputs   []chat.TurnInput
	cleared  []string
	clearErr error
}

func (m *mockUseCase) HandleTurn(ctx context.Context, input chat.TurnInput) chat.TurnOutput {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	return chat.TurnOutput{SessionID: input.SessionID, Reply: "reply to " + input.Message, Status: chat.StatusAnswered}
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) ([]model.Turn, error) {
	return nil, nil
}

func (m *mockUseCase) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = append(m.cleared, sessionID)
	return m.clearErr
}

func (m *mockUseCase) Stats(ctx context.Context) session.Stats {
	return session.Stats{}
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine  *gin.Engine
	handler telegram.Handler
	uc      *mockUseCase

	mu   sync.Mutex
	sent []pkgTelegram.SendMessageRequest
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{uc: &mockUseCase{}}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload pkgTelegram.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&payload)
		env.mu.Lock()
		env.sent = append(env.sent, payload)
		env.mu.Unlock()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot, err := pkgTelegram.New(pkgTelegram.Config{Token: "test-token", APIURL: tgServer.URL})
	require.NoError(t, err)

	env.handler = telegram.New(&mockLogger{}, env.uc, bot)
	env.engine = gin.New()
	env.engine.POST("/webhook/telegram", env.handler.HandleWebhook)
	return env
}

func (e *testEnv) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	e.handler.Wait(ctx)
	return w
}

func (e *testEnv) messages() []pkgTelegram.SendMessageRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]pkgTelegram.SendMessageRequest(nil), e.sent...)
}

func update(chatID int64, text string) string {
	b, _ := json.Marshal(pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	})
	return string(b)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_TextRunsTurn(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, update(42, "What is the EMI on a 5 lakh loan?"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")

	require.Len(t, env.uc.inputs, 1)
	assert.Equal(t, "telegram_42", env.uc.inputs[0].SessionID)

	sent := env.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(42), sent[0].ChatID)
	assert.Equal(t, "reply to What is the EMI on a 5 lakh loan?", sent[0].Text)
}

func TestHandleWebhook_Commands(t *testing.T) {
	env := newTestEnv(t)

	env.post(t, update(7, "/start"))
	env.post(t, update(7, "/help@finance_bot"))
	env.post(t, update(7, "/clear"))

	assert.Empty(t, env.uc.inputs)
	assert.Equal(t, []string{"telegram_7"}, env.uc.cleared)

	sent := env.messages()
	require.Len(t, sent, 3)
	assert.Equal(t, pkgTelegram.ParseModeMarkdown, sent[0].ParseMode)
	assert.Contains(t, sent[0].Text, "Welcome")
	assert.Contains(t, sent[1].Text, "How to use")
	assert.Equal(t, "🧹 Chat history cleared.", sent[2].Text)
}

func TestHandleWebhook_ClearFailureNotifiesUser(t *testing.T) {
	env := newTestEnv(t)
	env.uc.clearErr = errors.New("store down")

	env.post(t, update(9, "/clear"))

	sent := env.messages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Text, "Something went wrong")
}

func TestHandleWebhook_IgnoresNonMessage(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, `{"update_id": 5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
	assert.Empty(t, env.messages())
}

func TestHandleWebhook_BadPayload(t *testing.T) {
	env := newTestEnv(t)

	w := env.post(t, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhook_EmptyTextIsSkipped(t *testing.T) {
	env := newTestEnv(t)

	env.post(t, update(3, "   "))
	assert.Empty(t, env.uc.inputs)
	assert.Empty(t, env.messages())
}
