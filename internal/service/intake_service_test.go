package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

func TestIntake_CreatesProjectWithQuestions(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewIntakeService(env.projects, &stubClarify{
		questions: []string{"What is the deadline?", "Who are the users?"},
	})

	p, err := svc.Intake(context.Background(), "  Build a reading tracker app  ")
	require.NoError(t, err)
	assert.Equal(t, "Build a reading tracker app", p.Summary)
	assert.Equal(t, domain.ProjectIntake, p.Status)
	assert.Len(t, p.Questions, 2)

	stored, err := env.projects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Summary, stored.Summary)
	assert.Equal(t, p.Questions, stored.Questions)
}

func TestIntake_RejectsEmptySummary(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewIntakeService(env.projects, &stubClarify{questions: []string{"q"}})

	_, err := svc.Intake(context.Background(), "   ")
	assert.Error(t, err)

	projects, err := env.projects.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestIntake_PropagatesClarifyError(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewIntakeService(env.projects, &stubClarify{err: errPlannerDown})

	_, err := svc.Intake(context.Background(), "some project")
	assert.ErrorIs(t, err, errPlannerDown)
}
