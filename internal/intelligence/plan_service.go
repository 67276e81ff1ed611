package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zaydor/ai-project-manager/internal/llm"
)

// MilestoneDraft is one proposed milestone in a generated plan.
type MilestoneDraft struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EstimateHours float64 `json:"estimate_hours"`
}

// TaskDraft is one proposed task in a generated plan. MilestoneIndex refers
// into the milestones list; nil means the task belongs to no milestone.
type TaskDraft struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimateHours  *float64 `json:"estimate_hours"`
	MilestoneIndex *int     `json:"milestone_index"`
}

// PlanDraft is a generated project plan before persistence.
type PlanDraft struct {
	Milestones []MilestoneDraft `json:"milestones"`
	Tasks      []TaskDraft      `json:"tasks"`
}

// PlanService turns a project summary and interview answers into a plan.
type PlanService interface {
	Draft(ctx context.Context, summary string, answers map[string]string) (*PlanDraft, error)
}

type planService struct {
	client llm.Client
}

func NewPlanService(client llm.Client) PlanService {
	return &planService{client: client}
}

func validatePlanDraft(d PlanDraft) error {
	if len(d.Tasks) == 0 {
		return fmt.Errorf("plan has no tasks")
	}
	for i, task := range d.Tasks {
		if strings.TrimSpace(task.Title) == "" {
			return fmt.Errorf("task %d has no title", i)
		}
		if task.MilestoneIndex != nil &&
			(*task.MilestoneIndex < 0 || *task.MilestoneIndex >= len(d.Milestones)) {
			return fmt.Errorf("task %d references milestone %d of %d",
				i, *task.MilestoneIndex, len(d.Milestones))
		}
	}
	return nil
}

// Draft generates a plan via the LLM. Unlike clarifying questions there is
// no useful deterministic fallback for a whole plan, so failures propagate.
func (s *planService) Draft(ctx context.Context, summary string, answers map[string]string) (*PlanDraft, error) {
	if s.client == nil {
		return nil, fmt.Errorf("plan generation requires an LLM: %w", llm.ErrOllamaUnavailable)
	}

	payload, err := json.Marshal(map[string]any{
		"summary": summary,
		"answers": answers,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding plan context: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   fmt.Sprintf(planUserPromptTemplate, string(payload)),
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan generation failed: %w", err)
	}

	draft, err := llm.ExtractJSON[PlanDraft](resp.Text, validatePlanDraft)
	if err != nil {
		return nil, fmt.Errorf("extracting plan: %w", err)
	}

	for i := range draft.Milestones {
		draft.Milestones[i].Title = strings.TrimSpace(draft.Milestones[i].Title)
	}
	for i := range draft.Tasks {
		draft.Tasks[i].Title = strings.TrimSpace(draft.Tasks[i].Title)
	}
	return &draft, nil
}
