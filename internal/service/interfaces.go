package service

import (
	"context"

	"github.com/zaydor/ai-project-manager/internal/connector"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/scheduler"
)

type IntakeService interface {
	Intake(ctx context.Context, summary string) (*domain.Project, error)
}

// PlanResult holds the outcome of generating and persisting a plan.
type PlanResult struct {
	Project        *domain.Project
	MilestoneCount int
	TaskCount      int
}

type PlanService interface {
	Generate(ctx context.Context, projectID string, answers map[string]string) (*PlanResult, error)
	Reestimate(ctx context.Context, projectID string) (int, error)
}

type ScheduleService interface {
	Preview(ctx context.Context, projectID string, avail scheduler.Availability) ([]scheduler.Entry, error)
	Apply(ctx context.Context, projectID string, avail scheduler.Availability) ([]*domain.ScheduledBlock, error)
}

// Connector is the slice of a push connector the service layer needs. Both
// connector.TodoistClient and connector.CalendarClient satisfy it.
type Connector interface {
	DryRun(items []connector.PushItem) connector.Preview
	Apply(ctx context.Context, items []connector.PushItem) ([]connector.Result, error)
	Undo(ctx context.Context, created []connector.Result) ([]connector.Result, error)
}

type PushService interface {
	DryRun(ctx context.Context, projectID string, target domain.PushTarget) (connector.Preview, error)
	Apply(ctx context.Context, projectID string, target domain.PushTarget) ([]connector.Result, error)
}

// SimilarTask is one embedding-index match for a query.
type SimilarTask struct {
	TaskID     string
	Title      string
	Similarity float64
}

type SimilarService interface {
	Similar(ctx context.Context, projectID string, query string, topK int) ([]SimilarTask, error)
}
