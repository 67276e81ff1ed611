package service

import (
	"context"
	"fmt"

	"github.com/zaydor/ai-project-manager/internal/connector"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/repository"
)

type pushService struct {
	schedule   repository.ScheduleRepo
	tasks      repository.TaskRepo
	connectors map[domain.PushTarget]Connector
}

// NewPushService wires the push targets that are configured. Missing targets
// report connector.ErrNotConfigured when used.
func NewPushService(schedule repository.ScheduleRepo, tasks repository.TaskRepo, connectors map[domain.PushTarget]Connector) PushService {
	return &pushService{schedule: schedule, tasks: tasks, connectors: connectors}
}

// DryRun previews what a live push would send. No network calls.
func (s *pushService) DryRun(ctx context.Context, projectID string, target domain.PushTarget) (connector.Preview, error) {
	conn, err := s.connectorFor(target)
	if err != nil {
		return connector.Preview{}, err
	}
	items, err := s.buildItems(ctx, projectID)
	if err != nil {
		return connector.Preview{}, err
	}
	return conn.DryRun(items), nil
}

// Apply pushes the project's stored schedule to the target service.
func (s *pushService) Apply(ctx context.Context, projectID string, target domain.PushTarget) ([]connector.Result, error) {
	conn, err := s.connectorFor(target)
	if err != nil {
		return nil, err
	}
	items, err := s.buildItems(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return conn.Apply(ctx, items)
}

func (s *pushService) connectorFor(target domain.PushTarget) (Connector, error) {
	conn, ok := s.connectors[target]
	if !ok || conn == nil {
		return nil, fmt.Errorf("push target %s: %w", target, connector.ErrNotConfigured)
	}
	return conn, nil
}

// buildItems joins stored schedule blocks with their task titles and
// descriptions.
func (s *pushService) buildItems(ctx context.Context, projectID string) ([]connector.PushItem, error) {
	blocks, err := s.schedule.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("project %s has no stored schedule", projectID)
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	items := make([]connector.PushItem, 0, len(blocks))
	for _, b := range blocks {
		item := connector.PushItem{
			TaskID:  b.TaskID,
			StartTS: b.StartTS,
			EndTS:   b.EndTS,
		}
		if t, ok := byID[b.TaskID]; ok {
			item.Title = t.Title
			item.Description = t.Description
		}
		items = append(items, item)
	}
	return items, nil
}
