package intelligence

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_ParsesLLMOutput(t *testing.T) {
	svc := NewEstimateService(&stubClient{text: `{"estimate_hours": 3.5, "confidence": 0.8, "notes": "straightforward"}`})

	est, err := svc.Estimate(context.Background(), "Build login", "OAuth with refresh")
	require.NoError(t, err)
	assert.Equal(t, 3.5, est.Hours)
	assert.Equal(t, 0.8, est.Confidence)
}

func TestEstimate_HeuristicWhenLLMDown(t *testing.T) {
	svc := NewEstimateService(&stubClient{err: errStubDown})

	est, err := svc.Estimate(context.Background(), "short", "")
	require.NoError(t, err)
	assert.Equal(t, 0.5, est.Hours, "short text floors at half an hour")
	assert.Equal(t, 0.4, est.Confidence)
}

func TestEstimate_HeuristicScalesWithLength(t *testing.T) {
	svc := NewEstimateService(&stubClient{err: errStubDown})

	long := strings.Repeat("implement the thing ", 20) // ~400 chars
	est, err := svc.Estimate(context.Background(), "big task", long)
	require.NoError(t, err)
	assert.Greater(t, est.Hours, 4.0)
}

func TestEstimate_HeuristicOnInvalidOutput(t *testing.T) {
	svc := NewEstimateService(&stubClient{text: `{"estimate_hours": -2, "confidence": 0.9}`})

	est, err := svc.Estimate(context.Background(), "task", "desc")
	require.NoError(t, err)
	assert.Equal(t, 0.4, est.Confidence, "invalid estimate falls back to heuristic")
}
