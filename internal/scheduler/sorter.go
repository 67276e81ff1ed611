package scheduler

import "sort"

// orderTasks sorts normalized tasks longest-first with an ID tie-break.
// Placing the largest blocks first is the classic longest-processing-time
// heuristic, which keeps fragmentation low; the ID tie-break makes the order
// independent of input iteration order.
func orderTasks(tasks []normalizedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Minutes != tasks[j].Minutes {
			return tasks[i].Minutes > tasks[j].Minutes
		}
		return tasks[i].ID < tasks[j].ID
	})
}
