package cli

import (
	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/repository"
	"github.com/zaydor/ai-project-manager/internal/service"
)

// App holds the services and repositories CLI commands run against.
type App struct {
	Intake   service.IntakeService
	Plan     service.PlanService
	Schedule service.ScheduleService
	Push     service.PushService
	Similar  service.SimilarService

	Projects repository.ProjectRepo
	Tasks    repository.TaskRepo
	Blocks   repository.ScheduleRepo

	// Interactive is true when stdout is a terminal. It gates the huh
	// interview form and the LLM spinner.
	Interactive bool
}

// NewRootCmd creates the top-level "aipm" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "aipm",
		Short:         "Plan and schedule projects with LLM assistance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newIntakeCmd(app),
		newPlanCmd(app),
		newEstimateCmd(app),
		newScheduleCmd(app),
		newPushCmd(app),
		newSimilarCmd(app),
		newAuthCmd(),
		newProjectCmd(app),
	)

	return root
}
