package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"channel-finance-assistant/internal/model"
	"channel-finance-assistant/pkg/llmprovider"
)

type stubGenerator struct {
	reply string
	err   error
	got   *llmprovider.Request
}

func (g *stubGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.got = req
	if g.err != nil {
		return nil, g.err
	}
	return &llmprovider.Response{Content: llmprovider.NewTextMessage(llmprovider.RoleAssistant, g.reply)}, nil
}

func TestLLMSummarizer(t *testing.T) {
	gen := &stubGenerator{reply: "  Asked which documents a loan needs.  "}
	s := NewLLMSummarizer(gen, SummarizerConfig{Temperature: 0})

	turns := []model.Turn{
		model.NewTurn(model.RoleUser, "What documents do I need for a loan?"),
		model.NewTurn(model.RoleAssistant, "ID and proof of income."),
	}

	got, err := s.Summarize(context.Background(), turns)
	require.NoError(t, err)
	assert.Equal(t, "Asked which documents a loan needs.", got)

	require.NotNil(t, gen.got.SystemInstruction)
	assert.Equal(t, SummaryInstruction, gen.got.SystemInstruction.Text())
	assert.Zero(t, gen.got.Temperature)
	assert.Equal(t, DefaultSummaryMaxTokens, gen.got.MaxTokens)
	require.Len(t, gen.got.Messages, 1)
	assert.Equal(t, "User: What documents do I need for a loan?\nAssistant: ID and proof of income.", gen.got.Messages[0].Text())
}

func TestLLMSummarizer_Errors(t *testing.T) {
	s := NewLLMSummarizer(&stubGenerator{err: llmprovider.ErrAllProvidersFailed}, SummarizerConfig{})

	_, err := s.Summarize(context.Background(), []model.Turn{model.NewTurn(model.RoleUser, "hi")})
	assert.True(t, errors.Is(err, llmprovider.ErrAllProvidersFailed))

	_, err = s.Summarize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToSummarize)
}
