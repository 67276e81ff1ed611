package intelligence

import (
	"context"
	"fmt"
	"math"

	"github.com/zaydor/ai-project-manager/internal/llm"
)

// Estimate is an effort estimate for a single task.
type Estimate struct {
	Hours      float64
	Confidence float64
}

// EstimateService produces per-task effort estimates.
type EstimateService interface {
	Estimate(ctx context.Context, title, description string) (Estimate, error)
}

type estimateService struct {
	client llm.Client
}

func NewEstimateService(client llm.Client) EstimateService {
	return &estimateService{client: client}
}

type estimateResponse struct {
	EstimateHours float64 `json:"estimate_hours"`
	Confidence    float64 `json:"confidence"`
	Notes         string  `json:"notes"`
}

func validateEstimateResponse(r estimateResponse) error {
	if r.EstimateHours <= 0 {
		return fmt.Errorf("estimate_hours must be positive, got %v", r.EstimateHours)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence out of range: %v", r.Confidence)
	}
	return nil
}

// Estimate asks the LLM for an effort estimate, falling back to a length
// heuristic when the model is unreachable or emits unusable output. Like
// clarifying questions, estimation is total: it never fails except on
// context cancellation.
func (s *estimateService) Estimate(ctx context.Context, title, description string) (Estimate, error) {
	if s.client == nil {
		return heuristicEstimate(title, description), nil
	}

	task := fmt.Sprintf("Title: %s\nDescription: %s", title, description)
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskEstimate,
		SystemPrompt: estimateSystemPrompt,
		UserPrompt:   fmt.Sprintf(estimateUserPromptTemplate, task),
	})
	if err != nil {
		if ctx.Err() != nil {
			return Estimate{}, ctx.Err()
		}
		return heuristicEstimate(title, description), nil
	}

	parsed, err := llm.ExtractJSON[estimateResponse](resp.Text, validateEstimateResponse)
	if err != nil {
		return heuristicEstimate(title, description), nil
	}

	return Estimate{Hours: parsed.EstimateHours, Confidence: parsed.Confidence}, nil
}

// heuristicEstimate sizes a task from its text length: two hours per 100
// characters of title and description, floored at half an hour, with low
// confidence.
func heuristicEstimate(title, description string) Estimate {
	textLen := len(title) + 1 + len(description)
	hours := math.Round(float64(textLen)/100.0*2.0*100) / 100
	if hours < 0.5 {
		hours = 0.5
	}
	return Estimate{Hours: hours, Confidence: 0.4}
}
