package gemini

import "context"

// IGemini generates chat replies through the Gemini API.
// Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New builds a client backed by the genai SDK. No network call is made.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGenaiImpl(cfg)
}
