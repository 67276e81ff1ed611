package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zaydor/ai-project-manager/internal/llm"
)

// fallbackQuestions is the deterministic question set used when the LLM is
// unavailable or returns unusable output. Intake must always succeed.
var fallbackQuestions = []string{
	"What are the primary technical goals?",
	"Who are the main users?",
	"What is the desired deadline?",
	"Are there stack constraints or preferences?",
	"Any non-functional requirements (scaling, latency)?",
}

// ClarifyService generates clarifying questions for a project summary.
type ClarifyService interface {
	Questions(ctx context.Context, summary string) ([]string, error)
}

type clarifyService struct {
	client llm.Client
}

func NewClarifyService(client llm.Client) ClarifyService {
	return &clarifyService{client: client}
}

type clarifyResponse struct {
	Questions []string `json:"questions"`
}

func validateClarifyResponse(r clarifyResponse) error {
	if len(r.Questions) == 0 {
		return fmt.Errorf("no questions returned")
	}
	for i, q := range r.Questions {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("question %d is empty", i)
		}
	}
	return nil
}

// Questions asks the LLM for clarifying questions, falling back to the
// deterministic set when the model is unreachable or emits garbage. The
// returned error is non-nil only for context cancellation.
func (s *clarifyService) Questions(ctx context.Context, summary string) ([]string, error) {
	if s.client == nil {
		return fallbackQuestions, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClarify,
		SystemPrompt: clarifySystemPrompt,
		UserPrompt:   fmt.Sprintf(clarifyUserPromptTemplate, summary),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return fallbackQuestions, nil
	}

	parsed, err := llm.ExtractJSON[clarifyResponse](resp.Text, validateClarifyResponse)
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			return fallbackQuestions, nil
		}
		return nil, err
	}

	questions := make([]string, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		questions = append(questions, strings.TrimSpace(q))
	}
	return questions, nil
}
