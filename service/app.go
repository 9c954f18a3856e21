package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"blogshell/app/config"
	"blogshell/app/logging"
	"blogshell/app/repositories"

	"github.com/urfave/cli/v3"
)

const cliVersion = "1.0.0"

// NewApp builds the blogshell command tree.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "blogshell",
		Usage:   "Command driven micro-blogging engine",
		Version: cliVersion,
		Flags:   config.Flags(),
		Commands: []*cli.Command{
			runCommand(),
			serveCommand(),
			blogsCommand(),
			backupCommand(),
			restoreCommand(),
			cleanCommand(),
		},
	}
}

// Run executes the application and returns the process exit code.
func Run(ctx context.Context, args []string) int {
	app := NewApp()
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// environment is what every subcommand needs: parsed config, logger and store.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	repo   repositories.BlogRepository
}

func (e *environment) Close() error {
	return e.repo.Close()
}

// setup reads the configuration, installs the logger and opens the store.
func setup(cmd *cli.Command) (*environment, error) {
	cfg, err := config.FromCommand(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.Store == repositories.BackendSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	var repo repositories.BlogRepository
	if cfg.Fallback {
		repo = repositories.OpenWithFallback(cfg.Store, cfg.DBPath, logger)
	} else {
		repo, err = repositories.Open(cfg.Store, cfg.DBPath)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("storage ready", "backend", cfg.Store, "path", cfg.DBPath)
	return &environment{cfg: cfg, logger: logger, repo: repo}, nil
}
