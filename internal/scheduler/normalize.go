package scheduler

import "math"

// TaskInput is the scheduler's view of a task: an identifier and at most one
// meaningful effort estimate. Callers with richer task records pass only
// these fields; everything else travels around the scheduler, not through it.
type TaskInput struct {
	ID            string
	EstimateMin   *int
	EstimateHours *float64
}

// normalizedTask is a task reduced to a minute-granularity duration. It
// keeps a reference to the original input for pass-through metadata.
type normalizedTask struct {
	ID      string
	Minutes int
	Input   TaskInput
}

// normalize converts each task's heterogeneous duration fields into minutes,
// clamped up to blockMin. Minutes win over hours when both are present;
// a task with neither defaults to 60 minutes. Malformed estimates never
// fail normalization.
func normalize(tasks []TaskInput, blockMin int) []normalizedTask {
	out := make([]normalizedTask, 0, len(tasks))
	for _, t := range tasks {
		minutes := taskMinutes(t)
		if minutes < blockMin {
			minutes = blockMin
		}
		out = append(out, normalizedTask{ID: t.ID, Minutes: minutes, Input: t})
	}
	return out
}

func taskMinutes(t TaskInput) int {
	if t.EstimateMin != nil {
		return *t.EstimateMin
	}
	if t.EstimateHours != nil {
		return int(math.Round(*t.EstimateHours * 60))
	}
	return 60
}
