package scheduler

import "sort"

// dayBin tracks one scheduling day's running load and placements. Bins are
// created lazily and never merged or removed.
type dayBin struct {
	load    int
	entries []Entry
}

// allocate greedily places ordered tasks into day bins under the per-day
// capacity limit. For each task the existing bins are scanned in
// (load ascending, index ascending) order and the first bin that still fits
// the task wins; if none fits, a new bin opens at the next index. Favoring
// the least-loaded bin levels work across already-open days before adding
// new ones. Bin packing is NP-hard in general; this greedy deterministic
// heuristic is the intended trade-off, not an approximation of some exact
// solver.
//
// A task is always placed as a single block. Tasks longer than blockMax are
// flagged SplitRecommended so a caller can suggest breaking them up; the
// flag never affects placement.
func allocate(tasks []normalizedTask, capacity, blockMax int) []Entry {
	var bins []dayBin

	for _, t := range tasks {
		idx := -1

		order := make([]int, len(bins))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			if bins[order[a]].load != bins[order[b]].load {
				return bins[order[a]].load < bins[order[b]].load
			}
			return order[a] < order[b]
		})
		for _, di := range order {
			if bins[di].load+t.Minutes <= capacity {
				idx = di
				break
			}
		}

		if idx == -1 {
			bins = append(bins, dayBin{})
			idx = len(bins) - 1
		}

		start := bins[idx].load
		bins[idx].entries = append(bins[idx].entries, Entry{
			TaskID:           t.ID,
			Day:              idx,
			StartMin:         start,
			EndMin:           start + t.Minutes,
			DurationMin:      t.Minutes,
			SplitRecommended: t.Minutes > blockMax,
		})
		bins[idx].load += t.Minutes
	}

	var entries []Entry
	for _, bin := range bins {
		entries = append(entries, bin.entries...)
	}
	return entries
}
