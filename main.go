package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnomegl/hourglass/internal/art"
	"github.com/gnomegl/hourglass/internal/auth"
	appcli "github.com/gnomegl/hourglass/internal/cli"
	"github.com/gnomegl/hourglass/internal/config"
	"github.com/gnomegl/hourglass/internal/github"
	"github.com/gnomegl/hourglass/internal/logging"
	"github.com/gnomegl/hourglass/internal/service"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func runApp(c *cli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return exitWith(&service.StageError{Stage: service.StageConfig, Err: err})
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		NoColor: os.Getenv("NO_COLOR") != "",
	}, os.Stderr)

	if !cfg.NoBanner {
		art.PrintLogo(os.Stderr)
	}

	clients, err := auth.SetupGitHubClient(cfg.Token)
	if err != nil {
		return exitWith(&service.StageError{Stage: service.StageConfig, Err: err})
	}

	ghCfg := github.DefaultConfig()
	ghCfg.ShowProgress = !cfg.NoProgress

	newStore := func(owner, repo, path string) github.DocumentStore {
		return github.NewReadmeStore(clients.REST, owner, repo, path)
	}

	orchestrator := service.NewOrchestrator(clients.GraphQL, newStore, service.Options{
		Location:      cfg.Location(),
		BarWidth:      cfg.BarWidth,
		DryRun:        cfg.DryRun,
		CommitMessage: cfg.CommitMessage,
		Target:        cfg.Target,
		GitHub:        ghCfg,
	}, logger, os.Stdout)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitWith(orchestrator.Run(ctx))
}

// exitWith turns a stage failure into a distinct exit status. The failure
// has already been logged by the time it gets here.
func exitWith(err error) error {
	if err == nil {
		return nil
	}
	var stageErr *service.StageError
	if errors.As(err, &stageErr) {
		if stageErr.Stage == service.StageConfig {
			return cli.Exit(stageErr.Error(), stageErr.ExitCode())
		}
		return cli.Exit("", stageErr.ExitCode())
	}
	return err
}

func main() {
	log.SetFlags(0)

	// a missing .env is the normal case in CI
	_ = godotenv.Load()

	app := appcli.NewApp(runApp)
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
