package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/embedding"
	"github.com/zaydor/ai-project-manager/internal/intelligence"
	"github.com/zaydor/ai-project-manager/internal/repository"
)

type planService struct {
	projects   repository.ProjectRepo
	tasks      repository.TaskRepo
	embeddings repository.EmbeddingRepo
	uow        db.UnitOfWork
	planner    intelligence.PlanService
	estimator  intelligence.EstimateService
}

func NewPlanService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	embeddings repository.EmbeddingRepo,
	uow db.UnitOfWork,
	planner intelligence.PlanService,
	estimator intelligence.EstimateService,
) PlanService {
	return &planService{
		projects:   projects,
		tasks:      tasks,
		embeddings: embeddings,
		uow:        uow,
		planner:    planner,
		estimator:  estimator,
	}
}

// Generate drafts a plan from the project summary and interview answers, then
// replaces the project's milestones and tasks in one transaction. Rerunning
// plan generation discards the previous plan.
func (s *planService) Generate(ctx context.Context, projectID string, answers map[string]string) (*PlanResult, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	draft, err := s.planner.Draft(ctx, project.Summary, answers)
	if err != nil {
		return nil, fmt.Errorf("drafting plan: %w", err)
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		milestones := repository.NewSQLiteMilestoneRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)

		if err := tasks.DeleteByProject(ctx, projectID); err != nil {
			return err
		}
		if err := milestones.DeleteByProject(ctx, projectID); err != nil {
			return err
		}

		milestoneIDs := make([]string, len(draft.Milestones))
		for i, md := range draft.Milestones {
			m := &domain.Milestone{
				ID:            uuid.New().String(),
				ProjectID:     projectID,
				Title:         md.Title,
				Description:   md.Description,
				EstimateHours: md.EstimateHours,
				OrderIndex:    i,
				CreatedAt:     now,
			}
			if err := milestones.Create(ctx, m); err != nil {
				return err
			}
			milestoneIDs[i] = m.ID
		}

		for _, td := range draft.Tasks {
			t := &domain.Task{
				ID:            uuid.New().String(),
				ProjectID:     projectID,
				Title:         td.Title,
				Description:   td.Description,
				EstimateHours: td.EstimateHours,
				Status:        domain.TaskTodo,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if td.MilestoneIndex != nil {
				t.MilestoneID = &milestoneIDs[*td.MilestoneIndex]
			}
			if err := tasks.Create(ctx, t); err != nil {
				return err
			}
		}

		return projects.SetStatus(ctx, projectID, domain.ProjectPlanned)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting plan: %w", err)
	}

	project.Status = domain.ProjectPlanned
	return &PlanResult{
		Project:        project,
		MilestoneCount: len(draft.Milestones),
		TaskCount:      len(draft.Tasks),
	}, nil
}

// Reestimate refreshes effort estimates and confidence for every task in the
// project and rebuilds the project's embedding rows from the task texts.
// Returns the number of tasks updated.
func (s *planService) Reestimate(ctx context.Context, projectID string) (int, error) {
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, t := range tasks {
		est, err := s.estimator.Estimate(ctx, t.Title, t.Description)
		if err != nil {
			return updated, fmt.Errorf("estimating task %s: %w", t.ID, err)
		}
		hours := est.Hours
		t.EstimateHours = &hours
		t.EstimateMin = nil
		t.Confidence = est.Confidence
		t.UpdatedAt = time.Now().UTC()
		if err := s.tasks.Update(ctx, t); err != nil {
			return updated, fmt.Errorf("updating task %s: %w", t.ID, err)
		}
		updated++
	}

	if err := s.indexTasks(ctx, projectID, tasks); err != nil {
		return updated, err
	}
	return updated, nil
}

// indexTasks replaces the project's stored embeddings with fresh vectors over
// "title\ndescription" for each task.
func (s *planService) indexTasks(ctx context.Context, projectID string, tasks []*domain.Task) error {
	index := embedding.NewIndex(nil)
	texts := make([]string, len(tasks))
	metas := make([]map[string]string, len(tasks))
	for i, t := range tasks {
		texts[i] = t.Title + "\n" + t.Description
		metas[i] = map[string]string{"task_id": t.ID, "task": t.Title}
	}
	ids := index.Add(texts, metas)

	rows := make([]repository.StoredEmbedding, len(tasks))
	for i := range tasks {
		rows[i] = repository.StoredEmbedding{
			ItemID:   ids[i],
			Text:     texts[i],
			Vector:   index.Embed(texts[i]),
			Metadata: metas[i],
		}
	}

	if err := s.embeddings.DeleteByProject(ctx, projectID); err != nil {
		return fmt.Errorf("clearing embeddings: %w", err)
	}
	if err := s.embeddings.Save(ctx, projectID, rows); err != nil {
		return fmt.Errorf("saving embeddings: %w", err)
	}
	return nil
}
