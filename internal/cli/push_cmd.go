package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

func newPushCmd(app *App) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "push <todoist|calendar> <project-id>",
		Short: "Send the stored schedule to an external service",
		Long: `Sends the project's stored schedule to Todoist or Google Calendar.
Without --apply nothing is written; the command prints what would be sent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var target domain.PushTarget
			switch args[0] {
			case "todoist":
				target = domain.PushTodoist
			case "calendar":
				target = domain.PushCalendar
			default:
				return fmt.Errorf("unknown push target %q (want todoist or calendar)", args[0])
			}

			projectID, err := resolveProjectID(ctx, app, args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !apply {
				preview, err := app.Push.DryRun(ctx, projectID, target)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Dry run: would send %s to %s.\n",
					formatter.Bold(fmt.Sprintf("%d items", preview.Count)), target)
				for _, sample := range preview.Sample {
					fmt.Fprintf(out, "  %s\n", formatter.Dim(fmt.Sprintf("%v", sample)))
				}
				fmt.Fprintf(out, "\n%s\n", formatter.Dim("Rerun with --apply to push for real."))
				return nil
			}

			results, err := app.Push.Apply(ctx, projectID, target)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(results))
			pushed := 0
			for _, r := range results {
				status := formatter.StyleGreen.Render("pushed")
				detail := r.ExternalID
				if !r.Success {
					status = formatter.StyleRed.Render("failed")
					detail = r.Reason
				} else {
					pushed++
				}
				rows = append(rows, []string{r.TaskID, status, detail})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"Task", "Status", "Detail"}, rows))
			fmt.Fprintf(out, "\n%d of %d items pushed to %s.\n", pushed, len(results), target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "actually push instead of previewing")
	return cmd
}
