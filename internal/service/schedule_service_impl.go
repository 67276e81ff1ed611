package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/repository"
	"github.com/zaydor/ai-project-manager/internal/scheduler"
)

type scheduleService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
}

func NewScheduleService(tasks repository.TaskRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{tasks: tasks, uow: uow}
}

// Preview computes a schedule for the project's open tasks without writing
// anything.
func (s *scheduleService) Preview(ctx context.Context, projectID string, avail scheduler.Availability) ([]scheduler.Entry, error) {
	inputs, err := s.schedulableInputs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return scheduler.CreateSchedule(inputs, avail)
}

// Apply computes a schedule and replaces the project's stored blocks with it
// in one transaction, marking the project scheduled.
func (s *scheduleService) Apply(ctx context.Context, projectID string, avail scheduler.Availability) ([]*domain.ScheduledBlock, error) {
	entries, err := s.Preview(ctx, projectID, avail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blocks := make([]*domain.ScheduledBlock, len(entries))
	for i, e := range entries {
		blocks[i] = &domain.ScheduledBlock{
			ID:               uuid.New().String(),
			ProjectID:        projectID,
			TaskID:           e.TaskID,
			Day:              e.Day,
			StartMin:         e.StartMin,
			EndMin:           e.EndMin,
			DurationMin:      e.DurationMin,
			SplitRecommended: e.SplitRecommended,
			StartTS:          e.StartTS,
			EndTS:            e.EndTS,
			CreatedAt:        now,
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		schedule := repository.NewSQLiteScheduleRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)

		if err := schedule.DeleteByProject(ctx, projectID); err != nil {
			return err
		}
		for _, b := range blocks {
			if err := schedule.Create(ctx, b); err != nil {
				return err
			}
		}
		return projects.SetStatus(ctx, projectID, domain.ProjectScheduled)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting schedule: %w", err)
	}
	return blocks, nil
}

func (s *scheduleService) schedulableInputs(ctx context.Context, projectID string) ([]scheduler.TaskInput, error) {
	rows, err := s.tasks.ListSchedulable(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("project %s has no schedulable tasks", projectID)
	}

	inputs := make([]scheduler.TaskInput, len(rows))
	for i, r := range rows {
		inputs[i] = scheduler.TaskInput{
			ID:            r.Task.ID,
			EstimateMin:   r.Task.EstimateMin,
			EstimateHours: r.Task.EstimateHours,
		}
	}
	return inputs, nil
}
