package domain

import (
	"fmt"
	"time"
)

// ScheduledBlock is the persisted form of one scheduler entry: a task's
// indivisible time allocation within a single day.
type ScheduledBlock struct {
	ID               string
	ProjectID        string
	TaskID           string
	Day              int
	StartMin         int
	EndMin           int
	DurationMin      int
	SplitRecommended bool
	StartTS          *time.Time
	EndTS            *time.Time
	CreatedAt        time.Time
}

func minutesText(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

func hoursText(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// Offset renders a minute offset from midnight as a clock time (e.g. "02:05").
func Offset(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
