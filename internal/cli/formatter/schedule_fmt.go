package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/scheduler"
)

// ScheduleView is what the schedule renderer needs per entry. Both preview
// entries and persisted blocks convert into it.
type ScheduleView struct {
	TaskID           string
	Title            string
	Day              int
	StartMin         int
	EndMin           int
	DurationMin      int
	SplitRecommended bool
	StartTS          *time.Time
}

// ViewsFromEntries converts scheduler output, resolving task titles through
// the given map (task id to title).
func ViewsFromEntries(entries []scheduler.Entry, titles map[string]string) []ScheduleView {
	views := make([]ScheduleView, len(entries))
	for i, e := range entries {
		views[i] = ScheduleView{
			TaskID:           e.TaskID,
			Title:            titles[e.TaskID],
			Day:              e.Day,
			StartMin:         e.StartMin,
			EndMin:           e.EndMin,
			DurationMin:      e.DurationMin,
			SplitRecommended: e.SplitRecommended,
			StartTS:          e.StartTS,
		}
	}
	return views
}

// ViewsFromBlocks converts persisted schedule blocks.
func ViewsFromBlocks(blocks []*domain.ScheduledBlock, titles map[string]string) []ScheduleView {
	views := make([]ScheduleView, len(blocks))
	for i, b := range blocks {
		views[i] = ScheduleView{
			TaskID:           b.TaskID,
			Title:            titles[b.TaskID],
			Day:              b.Day,
			StartMin:         b.StartMin,
			EndMin:           b.EndMin,
			DurationMin:      b.DurationMin,
			SplitRecommended: b.SplitRecommended,
			StartTS:          b.StartTS,
		}
	}
	return views
}

// RenderSchedule renders a day-grouped schedule table with per-day load
// totals. Oversized blocks carry a split marker.
func RenderSchedule(views []ScheduleView, capacity int) string {
	if len(views) == 0 {
		return Dim("No blocks scheduled.") + "\n"
	}

	byDay := make(map[int][]ScheduleView)
	for _, v := range views {
		byDay[v.Day] = append(byDay[v.Day], v)
	}
	days := make([]int, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Ints(days)

	var b strings.Builder
	for _, day := range days {
		dayViews := byDay[day]

		load := 0
		for _, v := range dayViews {
			load += v.DurationMin
		}
		b.WriteString(Header(dayLabel(dayViews[0], day)))
		b.WriteString("\n")

		rows := make([][]string, 0, len(dayViews))
		for _, v := range dayViews {
			title := v.Title
			if title == "" {
				title = v.TaskID
			}
			marker := ""
			if v.SplitRecommended {
				marker = StyleYellow.Render("⚠ split recommended")
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s–%s", domain.Offset(v.StartMin), domain.Offset(v.EndMin)),
				title,
				fmt.Sprintf("%dm", v.DurationMin),
				marker,
			})
		}
		b.WriteString(RenderTable([]string{"Window", "Task", "Length", ""}, rows))
		b.WriteString(loadLine(load, capacity))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func dayLabel(v ScheduleView, day int) string {
	if v.StartTS != nil {
		return fmt.Sprintf("Day %d — %s", day+1, v.StartTS.Format("Mon Jan 2"))
	}
	return fmt.Sprintf("Day %d", day+1)
}

func loadLine(load, capacity int) string {
	if capacity <= 0 {
		return Dim(fmt.Sprintf("Load: %dm", load))
	}
	text := fmt.Sprintf("Load: %dm / %dm", load, capacity)
	if load > capacity {
		return StyleYellow.Render(text + " (over capacity)")
	}
	return Dim(text)
}
