package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
	"github.com/zaydor/ai-project-manager/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	var answersFile string

	cmd := &cobra.Command{
		Use:   "plan <project-id>",
		Short: "Answer the clarifying questions and generate a plan",
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

			answers, err := collectAnswers(app, answersFile, project.Questions)
			if err != nil {
				return err
			}

			var result *service.PlanResult
			err = formatter.WithSpinner("Drafting plan...", app.Interactive, func() error {
				var err error
				result, err = app.Plan.Generate(ctx, projectID, answers)
				return err
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Plan generated: %s, %s\n",
				formatter.Bold(fmt.Sprintf("%d milestones", result.MilestoneCount)),
				formatter.Bold(fmt.Sprintf("%d tasks", result.TaskCount)))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Inspect it with: aipm project show %s", project.DisplayID())))
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFile, "answers", "", "JSON file mapping questions to answers (skips the interview)")
	return cmd
}

// collectAnswers reads answers from the flag file when given, otherwise runs
// the interactive interview. Without a TTY the flag is mandatory.
func collectAnswers(app *App, answersFile string, questions []string) (map[string]string, error) {
	if answersFile != "" {
		raw, err := os.ReadFile(answersFile)
		if err != nil {
			return nil, fmt.Errorf("reading answers file: %w", err)
		}
		var answers map[string]string
		if err := json.Unmarshal(raw, &answers); err != nil {
			return nil, fmt.Errorf("parsing answers file: %w", err)
		}
		return answers, nil
	}

	if !app.Interactive {
		return nil, fmt.Errorf("no TTY available; pass answers with --answers file.json")
	}
	if len(questions) == 0 {
		return map[string]string{}, nil
	}

	values := make([]string, len(questions))
	if err := answersForm(questions, values).Run(); err != nil {
		return nil, fmt.Errorf("interview aborted: %w", err)
	}

	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		if values[i] != "" {
			answers[q] = values[i]
		}
	}
	return answers, nil
}
