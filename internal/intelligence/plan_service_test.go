package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaydor/ai-project-manager/internal/llm"
)

const planJSON = `{
	"milestones": [
		{"title": "MVP", "description": "first usable cut", "estimate_hours": 20},
		{"title": "Launch", "description": "", "estimate_hours": 10}
	],
	"tasks": [
		{"title": "Design schema", "description": "tables and indexes", "estimate_hours": 4, "milestone_index": 0},
		{"title": "Write docs", "description": "", "estimate_hours": 2, "milestone_index": null}
	]
}`

func TestPlan_DraftParsesMilestonesAndTasks(t *testing.T) {
	svc := NewPlanService(&stubClient{text: "```json\n" + planJSON + "\n```"})

	draft, err := svc.Draft(context.Background(), "summary", map[string]string{"q": "a"})
	require.NoError(t, err)
	require.Len(t, draft.Milestones, 2)
	require.Len(t, draft.Tasks, 2)

	assert.Equal(t, "MVP", draft.Milestones[0].Title)
	require.NotNil(t, draft.Tasks[0].MilestoneIndex)
	assert.Equal(t, 0, *draft.Tasks[0].MilestoneIndex)
	assert.Nil(t, draft.Tasks[1].MilestoneIndex)
	require.NotNil(t, draft.Tasks[0].EstimateHours)
	assert.Equal(t, 4.0, *draft.Tasks[0].EstimateHours)
}

func TestPlan_DraftFailsWhenLLMDown(t *testing.T) {
	svc := NewPlanService(&stubClient{err: errStubDown})
	_, err := svc.Draft(context.Background(), "summary", nil)
	assert.Error(t, err)
}

func TestPlan_DraftRejectsBadMilestoneIndex(t *testing.T) {
	svc := NewPlanService(&stubClient{text: `{
		"milestones": [{"title": "only one", "description": "", "estimate_hours": 1}],
		"tasks": [{"title": "t", "description": "", "estimate_hours": 1, "milestone_index": 5}]
	}`})
	_, err := svc.Draft(context.Background(), "summary", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestPlan_DraftRejectsEmptyPlan(t *testing.T) {
	svc := NewPlanService(&stubClient{text: `{"milestones": [], "tasks": []}`})
	_, err := svc.Draft(context.Background(), "summary", nil)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestPlan_NilClientErrors(t *testing.T) {
	svc := NewPlanService(nil)
	_, err := svc.Draft(context.Background(), "summary", nil)
	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
}
