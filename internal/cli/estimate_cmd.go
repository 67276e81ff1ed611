package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
)

func newEstimateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <project-id>",
		Short: "Re-estimate every task and refresh the similarity index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var updated int
			err = formatter.WithSpinner("Estimating tasks...", app.Interactive, func() error {
				var err error
				updated, err = app.Plan.Reestimate(ctx, projectID)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated estimates for %s\n",
				formatter.Bold(fmt.Sprintf("%d tasks", updated)))
			return nil
		},
	}
}
