package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/zaydor/ai-project-manager/internal/cli"
	"github.com/zaydor/ai-project-manager/internal/connector"
	"github.com/zaydor/ai-project-manager/internal/db"
	"github.com/zaydor/ai-project-manager/internal/domain"
	"github.com/zaydor/ai-project-manager/internal/intelligence"
	"github.com/zaydor/ai-project-manager/internal/llm"
	"github.com/zaydor/ai-project-manager/internal/repository"
	"github.com/zaydor/ai-project-manager/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env next to the working directory; real env wins.
	_ = godotenv.Load()

	dbPath := os.Getenv("AIPM_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".aipm", "aipm.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	embeddingRepo := repository.NewSQLiteEmbeddingRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// The LLM client is optional: intake falls back to deterministic
	// questions and estimates fall back to a heuristic without it.
	var llmClient llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}

	clarify := intelligence.NewClarifyService(llmClient)
	planner := intelligence.NewPlanService(llmClient)
	estimator := intelligence.NewEstimateService(llmClient)

	app := &cli.App{
		Intake:   service.NewIntakeService(projectRepo, clarify),
		Plan:     service.NewPlanService(projectRepo, taskRepo, embeddingRepo, uow, planner, estimator),
		Schedule: service.NewScheduleService(taskRepo, uow),
		Push:     service.NewPushService(scheduleRepo, taskRepo, buildConnectors()),
		Similar:  service.NewSimilarService(embeddingRepo, nil),
		Projects: projectRepo,
		Tasks:    taskRepo,
		Blocks:   scheduleRepo,

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}

// buildConnectors wires the push targets that have credentials available.
// Missing ones stay unwired and report as not configured when used.
func buildConnectors() map[domain.PushTarget]service.Connector {
	connectors := make(map[domain.PushTarget]service.Connector)

	if token := os.Getenv("TODOIST_TOKEN"); token != "" {
		connectors[domain.PushTodoist] = connector.NewTodoistClient(token)
	}

	tokenPath := os.Getenv("AIPM_GOOGLE_TOKEN")
	if tokenPath == "" {
		tokenPath = cli.DefaultGoogleTokenPath()
	}
	secretsPath := os.Getenv("AIPM_GOOGLE_CLIENT_SECRETS")
	if secretsPath != "" {
		if cfg, err := connector.LoadOAuthConfig(secretsPath, 0, connector.CalendarScope); err == nil {
			if token, err := connector.LoadToken(tokenPath); err == nil {
				source := connector.TokenSource(context.Background(), cfg, tokenPath, token)
				connectors[domain.PushCalendar] = connector.NewCalendarClient(source, os.Getenv("AIPM_GOOGLE_CALENDAR"))
			}
		}
	}

	return connectors
}
