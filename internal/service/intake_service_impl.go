package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/intelligence"
	"github.com/zaydor/ai-project-manager/internal/repository"
)

type intakeService struct {
	projects repository.ProjectRepo
	clarify  intelligence.ClarifyService
}

func NewIntakeService(projects repository.ProjectRepo, clarify intelligence.ClarifyService) IntakeService {
	return &intakeService{projects: projects, clarify: clarify}
}

// Intake persists a new project from a raw summary together with the
// clarifying questions generated for it. Question generation never blocks
// intake because ClarifyService falls back to a deterministic set.
func (s *intakeService) Intake(ctx context.Context, summary string) (*domain.Project, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, fmt.Errorf("project summary is empty")
	}

	questions, err := s.clarify.Questions(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("generating clarifying questions: %w", err)
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Summary:   summary,
		Questions: questions,
		Status:    domain.ProjectIntake,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting project: %w", err)
	}
	return p, nil
}
