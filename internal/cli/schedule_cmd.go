package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
	"github.com/zaydor/ai-project-manager/internal/scheduler"
)

func newScheduleCmd(app *App) *cobra.Command {
	var (
		hours    float64
		start    string
		buffer   float64
		blockMin int
		blockMax int
		apply    bool
	)

	cmd := &cobra.Command{
		Use:   "schedule <project-id>",
		Short: "Pack open tasks into daily blocks",
		Long: `Packs the project's open tasks into contiguous daily blocks using the
given availability. Without --apply the schedule is only previewed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			avail := scheduler.Availability{
				HoursPerDay: hours,
				BlockMin:    blockMin,
				BlockMax:    blockMax,
			}
			if cmd.Flags().Changed("buffer") {
				avail.BufferRatio = &buffer
			}
			if start != "" {
				day, err := time.ParseInLocation("2006-01-02", start, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --start date %q (want YYYY-MM-DD)", start)
				}
				avail.StartDate = &day
			}

			titles, err := taskTitles(ctx, app, projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if apply {
				blocks, err := app.Schedule.Apply(ctx, projectID, avail)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.RenderSchedule(formatter.ViewsFromBlocks(blocks, titles), avail.Capacity()))
				fmt.Fprintf(out, "\nStored %s.\n", formatter.Bold(fmt.Sprintf("%d blocks", len(blocks))))
				return nil
			}

			entries, err := app.Schedule.Preview(ctx, projectID, avail)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.RenderSchedule(formatter.ViewsFromEntries(entries, titles), avail.Capacity()))
			fmt.Fprintf(out, "\n%s\n", formatter.Dim("Preview only. Rerun with --apply to store it."))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 4, "available hours per day")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD) for calendar timestamps")
	cmd.Flags().Float64Var(&buffer, "buffer", scheduler.DefaultBufferRatio, "fraction of each day held back")
	cmd.Flags().IntVar(&blockMin, "block-min", 0, "minimum block length in minutes")
	cmd.Flags().IntVar(&blockMax, "block-max", 0, "block length above which a split is recommended")
	cmd.Flags().BoolVar(&apply, "apply", false, "persist the schedule instead of previewing")
	return cmd
}

func taskTitles(ctx context.Context, app *App, projectID string) (map[string]string, error) {
	tasks, err := app.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	return titles, nil
}
