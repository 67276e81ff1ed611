package domain

import "time"

// Task is one unit of work inside a project plan. At most one of EstimateMin
// and EstimateHours is meaningful; the scheduler normalizes whichever is set.
type Task struct {
	ID          string
	ProjectID   string
	MilestoneID *string
	Title       string
	Description string

	EstimateHours *float64
	EstimateMin   *int
	Confidence    float64

	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EstimateText renders the task's effort estimate for display.
func (t *Task) EstimateText() string {
	switch {
	case t.EstimateMin != nil:
		return minutesText(*t.EstimateMin)
	case t.EstimateHours != nil:
		return hoursText(*t.EstimateHours)
	default:
		return "–"
	}
}
