package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
	"github.com/zaydor/ai-project-manager/internal/domain"
)

func newIntakeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "intake <summary>",
		Short: "Create a project from a summary and get clarifying questions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := strings.Join(args, " ")

			var project *domain.Project
			err := formatter.WithSpinner("Generating clarifying questions...", app.Interactive, func() error {
				var err error
				project, err = app.Intake.Intake(cmd.Context(), summary)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created project %s (%s)\n\n", formatter.Bold(project.DisplayID()), project.ID)
			fmt.Fprintln(out, formatter.Header("Clarifying questions"))
			for i, q := range project.Questions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			fmt.Fprintf(out, "\n%s\n", formatter.Dim(fmt.Sprintf("Answer them with: aipm plan %s", project.DisplayID())))
			return nil
		},
	}
}
