package repository

import (
	"context"

	"github.com/zaydor/ai-project-manager/internal/domain"
)

// SchedulableTask is a task joined with the context the scheduler and push
// connectors need: identity, effort estimate, and display metadata.
type SchedulableTask struct {
	Task           domain.Task
	MilestoneTitle string
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) error
	Delete(ctx context.Context, id string) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	DeleteByProject(ctx context.Context, projectID string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListSchedulable(ctx context.Context, projectID string) ([]SchedulableTask, error)
	Update(ctx context.Context, t *domain.Task) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, b *domain.ScheduledBlock) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.ScheduledBlock, error)
	DeleteByProject(ctx context.Context, projectID string) error
}

// StoredEmbedding is one persisted embedding row.
type StoredEmbedding struct {
	ItemID   int
	Text     string
	Vector   []float64
	Metadata map[string]string
}

type EmbeddingRepo interface {
	Save(ctx context.Context, projectID string, embs []StoredEmbedding) error
	ListByProject(ctx context.Context, projectID string) ([]StoredEmbedding, error)
	DeleteByProject(ctx context.Context, projectID string) error
}
