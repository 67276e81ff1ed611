package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Inspect projects",
	}
	cmd.AddCommand(newProjectListCmd(app), newProjectShowCmd(app))
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context(), all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, formatter.Dim("No projects yet. Start one with: aipm intake \"<summary>\""))
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.DisplayID(),
					truncate(p.Summary, 60),
					formatter.ProjectStatusBadge(p.Status),
					p.CreatedAt.Format("2006-01-02"),
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"ID", "Summary", "Status", "Created"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include archived projects")
	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its plan and schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			project, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(project.DisplayID()))
			fmt.Fprintf(out, "%s\n", project.Summary)
			fmt.Fprintf(out, "Status: %s\n\n", formatter.ProjectStatusBadge(project.Status))

			tasks, err := app.Tasks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(out, formatter.Dim("No plan yet. Generate one with: aipm plan "+project.DisplayID()))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				conf := ""
				if t.Confidence > 0 {
					conf = fmt.Sprintf("%.0f%%", t.Confidence*100)
				}
				rows = append(rows, []string{
					t.Title,
					t.EstimateText(),
					conf,
					formatter.TaskStatusBadge(t.Status),
				})
			}
			fmt.Fprintln(out, formatter.Header("Tasks"))
			fmt.Fprint(out, formatter.RenderTable([]string{"Task", "Estimate", "Confidence", "Status"}, rows))

			blocks, err := app.Blocks.ListByProject(ctx, projectID)
			if err != nil {
				return err
			}
			if len(blocks) > 0 {
				titles, err := taskTitles(ctx, app, projectID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n", formatter.Header("Schedule"))
				fmt.Fprint(out, formatter.RenderSchedule(formatter.ViewsFromBlocks(blocks, titles), 0))
			}
			return nil
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
