package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/intelligence"
	"github.com/zaydor/ai-project-manager/internal/repository"
	"github.com/zaydor/ai-project-manager/internal/testutil"
)

var errPlannerDown = errors.New("planner down")

type serviceEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	projects   repository.ProjectRepo
	milestones repository.MilestoneRepo
	tasks      repository.TaskRepo
	schedule   repository.ScheduleRepo
	embeddings repository.EmbeddingRepo
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &serviceEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		projects:   repository.NewSQLiteProjectRepo(database),
		milestones: repository.NewSQLiteMilestoneRepo(database),
		tasks:      repository.NewSQLiteTaskRepo(database),
		schedule:   repository.NewSQLiteScheduleRepo(database),
		embeddings: repository.NewSQLiteEmbeddingRepo(database),
	}
}

func (e *serviceEnv) seedProject(t *testing.T, summary string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(summary, opts...)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func (e *serviceEnv) seedTask(t *testing.T, projectID, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(projectID, title, opts...)
	require.NoError(t, e.tasks.Create(context.Background(), task))
	return task
}

// stubClarify returns a fixed question list.
type stubClarify struct {
	questions []string
	err       error
}

func (s *stubClarify) Questions(_ context.Context, _ string) ([]string, error) {
	return s.questions, s.err
}

// stubPlanner returns a fixed draft.
type stubPlanner struct {
	draft *intelligence.PlanDraft
	err   error
}

func (s *stubPlanner) Draft(_ context.Context, _ string, _ map[string]string) (*intelligence.PlanDraft, error) {
	return s.draft, s.err
}

// stubEstimator returns a fixed estimate.
type stubEstimator struct {
	est intelligence.Estimate
	err error
}

func (s *stubEstimator) Estimate(_ context.Context, _, _ string) (intelligence.Estimate, error) {
	return s.est, s.err
}
