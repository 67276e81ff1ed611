package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithQuestions(qs ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Questions = qs
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func NewTestProject(summary string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Summary:   summary,
		Questions: []string{},
		Status:    domain.ProjectIntake,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func WithEstimateHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimateHours = &h
	}
}

func WithEstimateMin(m int) TaskOption {
	return func(t *domain.Task) {
		t.EstimateMin = &m
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithMilestone(id string) TaskOption {
	return func(t *domain.Task) {
		t.MilestoneID = &id
	}
}

func NewTestTask(projectID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    domain.TaskTodo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestMilestone(projectID, title string, orderIndex int) *domain.Milestone {
	return &domain.Milestone{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Title:      title,
		OrderIndex: orderIndex,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}
