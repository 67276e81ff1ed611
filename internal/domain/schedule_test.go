package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_EstimateText(t *testing.T) {
	min := 45
	h := 2.5
	whole := 3.0

	cases := []struct {
		name string
		task Task
		want string
	}{
		{"minutes", Task{EstimateMin: &min}, "45m"},
		{"fractional hours", Task{EstimateHours: &h}, "2.5h"},
		{"whole hours", Task{EstimateHours: &whole}, "3h"},
		{"none", Task{}, "–"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.task.EstimateText())
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, "00:00", Offset(0))
	assert.Equal(t, "01:30", Offset(90))
	assert.Equal(t, "04:05", Offset(245))
}

func TestMinutesText(t *testing.T) {
	assert.Equal(t, "30m", minutesText(30))
	assert.Equal(t, "2h", minutesText(120))
	assert.Equal(t, "1h30m", minutesText(90))
}
