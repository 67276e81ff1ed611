// Package scheduler assigns tasks to day bins using deterministic greedy
// bin-packing. Given effort estimates and a daily-capacity policy it places
// each task into exactly one day at a fixed minute offset. The result is a
// pure function of its inputs: identical tasks and availability always yield
// byte-for-byte identical schedules.
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Default block-size policy and capacity buffer.
const (
	DefaultBlockMin    = 25
	DefaultBlockMax    = 90
	DefaultBufferRatio = 0.25
)

// ErrNoCapacity indicates the availability configuration yields a
// non-positive daily capacity after the buffer is reserved. It is the only
// error the scheduling pipeline can return.
var ErrNoCapacity = errors.New("availability yields non-positive daily capacity")

// Availability describes the daily-capacity policy for one scheduling run.
type Availability struct {
	// HoursPerDay is the nominal working hours per day. Must be > 0.
	HoursPerDay float64

	// StartDate, when set, anchors day 0 at UTC midnight of the given
	// calendar date so entries carry absolute timestamps. When nil the
	// (day, start minute) coordinates are the authoritative schedule.
	StartDate *time.Time

	// BlockMin is the minimum block size in minutes; shorter tasks are
	// rounded up to it. Zero means DefaultBlockMin.
	BlockMin int

	// BlockMax is the advisory maximum block size in minutes. Tasks longer
	// than this are flagged SplitRecommended but never split. Zero means
	// DefaultBlockMax.
	BlockMax int

	// BufferRatio is the fraction of each day reserved as buffer, in
	// [0, 1). Nil means DefaultBufferRatio.
	BufferRatio *float64
}

// blockMin returns the effective minimum block size.
func (a Availability) blockMin() int {
	if a.BlockMin > 0 {
		return a.BlockMin
	}
	return DefaultBlockMin
}

// blockMax returns the effective advisory maximum block size.
func (a Availability) blockMax() int {
	if a.BlockMax > 0 {
		return a.BlockMax
	}
	return DefaultBlockMax
}

// bufferRatio returns the effective buffer fraction.
func (a Availability) bufferRatio() float64 {
	if a.BufferRatio != nil {
		return *a.BufferRatio
	}
	return DefaultBufferRatio
}

// Capacity returns the usable minutes per day after the buffer fraction is
// reserved: round(hoursPerDay * 60 * (1 - bufferRatio)).
func (a Availability) Capacity() int {
	return int(math.Round(a.HoursPerDay * 60 * (1 - a.bufferRatio())))
}

// Entry is one task's placement in the schedule. A task always occupies a
// single contiguous block within one day.
type Entry struct {
	TaskID           string     `json:"task_id"`
	Day              int        `json:"day"`
	StartMin         int        `json:"start_min"`
	EndMin           int        `json:"end_min"`
	DurationMin      int        `json:"duration_min"`
	SplitRecommended bool       `json:"split_recommended"`
	StartTS          *time.Time `json:"start_ts,omitempty"`
	EndTS            *time.Time `json:"end_ts,omitempty"`
}

// CreateSchedule builds a deterministic schedule for the given tasks.
//
// Tasks are normalized to minute durations, ordered longest-first with an ID
// tie-break, and greedily packed into day bins under the daily capacity
// limit. Tasks longer than the advisory maximum block size are placed whole
// and flagged SplitRecommended. When avail.StartDate is set, entries carry
// absolute UTC timestamps.
//
// The only failure mode is ErrNoCapacity, returned before any task is
// examined when the configuration reserves the whole day as buffer.
func CreateSchedule(tasks []TaskInput, avail Availability) ([]Entry, error) {
	capacity := avail.Capacity()
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: hours_per_day=%.2f buffer_ratio=%.2f",
			ErrNoCapacity, avail.HoursPerDay, avail.bufferRatio())
	}

	normalized := normalize(tasks, avail.blockMin())
	orderTasks(normalized)

	entries := allocate(normalized, capacity, avail.blockMax())

	if avail.StartDate != nil {
		projectTimestamps(entries, *avail.StartDate)
	}

	canonicalize(entries)
	return entries, nil
}

// canonicalize sorts entries by (day, start minute, task ID) so the output
// order never depends on allocator iteration order.
func canonicalize(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.StartMin != b.StartMin {
			return a.StartMin < b.StartMin
		}
		return a.TaskID < b.TaskID
	})
}
