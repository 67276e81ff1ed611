package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
)

func newSimilarCmd(app *App) *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "similar <project-id> <query...>",
		Short: "Find tasks similar to a query text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			query := strings.Join(args[1:], " ")

			results, err := app.Similar.Similar(ctx, projectID, query, topK)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Title,
					fmt.Sprintf("%.3f", r.Similarity),
					formatter.Dim(shortID(r.TaskID)),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Task", "Similarity", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&topK, "top", 5, "number of matches to show")
	return cmd
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
