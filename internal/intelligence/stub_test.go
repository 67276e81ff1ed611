package intelligence

import (
	"context"
	"errors"

	"github.com/zaydor/ai-project-manager/internal/llm"
)

// stubClient returns canned responses for testing the services without a
// running Ollama instance.
type stubClient struct {
	text string
	err  error
}

func (s *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubClient) Available(ctx context.Context) bool {
	return s.err == nil
}

var errStubDown = errors.New("stub: connection refused")
