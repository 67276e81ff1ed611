package scheduler

import "time"

// projectTimestamps converts each entry's abstract (day, minute) coordinates
// into absolute timestamps. Day 0 starts at UTC midnight of startDate; later
// days offset by whole calendar days. Minutes count from midnight of the
// entry's day.
func projectTimestamps(entries []Entry, startDate time.Time) {
	base := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	for i := range entries {
		dayStart := base.AddDate(0, 0, entries[i].Day)
		start := dayStart.Add(time.Duration(entries[i].StartMin) * time.Minute)
		end := dayStart.Add(time.Duration(entries[i].EndMin) * time.Minute)
		entries[i].StartTS = &start
		entries[i].EndTS = &end
	}
}
