package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func datePtr(t time.Time) *time.Time { return &t }

func TestCreateSchedule_EqualTasksSpreadAcrossDays(t *testing.T) {
	// Three 2-hour tasks against a 4h day with a 25% buffer: capacity is
	// 180 min, so no day can hold two 120-min tasks.
	tasks := []TaskInput{
		{ID: "1", EstimateHours: floatPtr(2)},
		{ID: "2", EstimateHours: floatPtr(2)},
		{ID: "3", EstimateHours: floatPtr(2)},
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	avail := Availability{
		HoursPerDay: 4,
		BufferRatio: floatPtr(0.25),
		StartDate:   datePtr(start),
	}

	require.Equal(t, 180, avail.Capacity())

	entries, err := CreateSchedule(tasks, avail)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, i, e.Day, "one task per day")
		assert.Equal(t, 0, e.StartMin)
		assert.Equal(t, 120, e.EndMin)
		assert.Equal(t, 120, e.DurationMin)
	}
	// Equal durations tie-break on ID ascending.
	assert.Equal(t, "1", entries[0].TaskID)
	assert.Equal(t, "2", entries[1].TaskID)
	assert.Equal(t, "3", entries[2].TaskID)

	require.NotNil(t, entries[1].StartTS)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), *entries[1].StartTS)
	assert.Equal(t, time.Date(2025, 1, 2, 2, 0, 0, 0, time.UTC), *entries[1].EndTS)
}

func TestCreateSchedule_ShortTasksClampToBlockMin(t *testing.T) {
	// Two 20-min tasks clamp up to the 25-min minimum block. With 1h/day and
	// the default buffer the capacity is 45 min, so they land on separate days.
	tasks := []TaskInput{
		{ID: "a", EstimateMin: intPtr(20)},
		{ID: "b", EstimateMin: intPtr(20)},
	}
	avail := Availability{HoursPerDay: 1}

	require.Equal(t, 45, avail.Capacity())

	entries, err := CreateSchedule(tasks, avail)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a", entries[0].TaskID)
	assert.Equal(t, 0, entries[0].Day)
	assert.Equal(t, "b", entries[1].TaskID)
	assert.Equal(t, 1, entries[1].Day)
	for _, e := range entries {
		assert.Equal(t, 25, e.DurationMin)
		assert.False(t, e.SplitRecommended)
		assert.Nil(t, e.StartTS, "no timestamps without a start date")
	}
}

func TestCreateSchedule_OversizedTaskPlacedWholeAndFlagged(t *testing.T) {
	tasks := []TaskInput{
		{ID: "long", EstimateMin: intPtr(200)},
		{ID: "small", EstimateMin: intPtr(30)},
	}
	avail := Availability{HoursPerDay: 4, BlockMax: 90}

	entries, err := CreateSchedule(tasks, avail)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var long, small Entry
	for _, e := range entries {
		switch e.TaskID {
		case "long":
			long = e
		case "small":
			small = e
		}
	}

	assert.Equal(t, 200, long.DurationMin, "oversized task is never split")
	assert.True(t, long.SplitRecommended)
	assert.Equal(t, long.EndMin-long.StartMin, long.DurationMin)

	assert.Equal(t, 30, small.DurationMin)
	assert.False(t, small.SplitRecommended)
	assert.NotEqual(t, long.Day, small.Day, "the 200-min block exceeds capacity, small task gets its own day")
}

func TestCreateSchedule_MissingEstimateDefaultsToOneHour(t *testing.T) {
	entries, err := CreateSchedule([]TaskInput{{ID: "x"}}, Availability{HoursPerDay: 8})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 60, entries[0].DurationMin)
}

func TestCreateSchedule_MinutesWinOverHours(t *testing.T) {
	tasks := []TaskInput{{ID: "x", EstimateMin: intPtr(45), EstimateHours: floatPtr(3)}}
	entries, err := CreateSchedule(tasks, Availability{HoursPerDay: 8})
	require.NoError(t, err)
	assert.Equal(t, 45, entries[0].DurationMin)
}

func TestCreateSchedule_NonPositiveCapacityFails(t *testing.T) {
	tasks := []TaskInput{{ID: "1", EstimateMin: intPtr(30)}}

	_, err := CreateSchedule(tasks, Availability{HoursPerDay: 4, BufferRatio: floatPtr(1.0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCapacity)

	_, err = CreateSchedule(tasks, Availability{HoursPerDay: 0})
	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestCreateSchedule_Deterministic(t *testing.T) {
	tasks := []TaskInput{
		{ID: "gamma", EstimateMin: intPtr(90)},
		{ID: "alpha", EstimateHours: floatPtr(1.5)},
		{ID: "beta", EstimateMin: intPtr(40)},
		{ID: "delta"},
	}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	avail := Availability{HoursPerDay: 5, StartDate: datePtr(start)}

	first, err := CreateSchedule(tasks, avail)
	require.NoError(t, err)

	// Same tasks in a different input order.
	reversed := []TaskInput{tasks[3], tasks[2], tasks[1], tasks[0]}
	second, err := CreateSchedule(reversed, avail)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreateSchedule_EmptyInput(t *testing.T) {
	entries, err := CreateSchedule(nil, Availability{HoursPerDay: 4})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateSchedule_OutputCanonicallyOrdered(t *testing.T) {
	tasks := []TaskInput{
		{ID: "e", EstimateMin: intPtr(30)},
		{ID: "d", EstimateMin: intPtr(60)},
		{ID: "c", EstimateMin: intPtr(45)},
		{ID: "b", EstimateMin: intPtr(90)},
		{ID: "a", EstimateMin: intPtr(120)},
	}
	entries, err := CreateSchedule(tasks, Availability{HoursPerDay: 4})
	require.NoError(t, err)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		ordered := prev.Day < cur.Day ||
			(prev.Day == cur.Day && prev.StartMin < cur.StartMin) ||
			(prev.Day == cur.Day && prev.StartMin == cur.StartMin && prev.TaskID < cur.TaskID)
		assert.True(t, ordered, "entries %d and %d out of canonical order", i-1, i)
	}
}

func TestAvailability_CapacityRounding(t *testing.T) {
	// 3.5h * 60 * 0.75 = 157.5 rounds to 158.
	avail := Availability{HoursPerDay: 3.5}
	assert.Equal(t, 158, avail.Capacity())
}
