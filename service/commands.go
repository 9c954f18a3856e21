package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"blogshell/app/commands"
	"blogshell/app/config"
	"blogshell/app/repositories"
	"blogshell/app/services"

	"github.com/urfave/cli/v3"
)

var errBackupUnsupported = errors.New("storage backend does not support backups")

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute command lines from files, or from stdin when no file is given",
		ArgsUsage: "[file...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			root := cmd.Root()
			service := services.NewBlogService(env.repo).WithLogger(env.logger)
			runner := commands.NewRunner(service, root.Writer, root.ErrWriter).WithLogger(env.logger)

			files := cmd.Args().Slice()
			if len(files) == 0 {
				files = []string{"-"}
			}

			var total commands.Summary
			for _, name := range files {
				summary, err := runFile(runner, root.Reader, name)
				total.Executed += summary.Executed
				total.Failed += summary.Failed
				if err != nil {
					return err
				}
			}
			env.logger.Info("commands processed", "executed", total.Executed, "failed", total.Failed)
			return nil
		},
	}
}

func runFile(runner *commands.Runner, stdin io.Reader, name string) (commands.Summary, error) {
	if name == "-" {
		return runner.Run(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return commands.Summary{}, fmt.Errorf("failed to open command file: %w", err)
	}
	defer f.Close()
	return runner.Run(f)
}

func blogsCommand() *cli.Command {
	return &cli.Command{
		Name:  "blogs",
		Usage: "List the stored blogs",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			names, err := env.repo.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
			return nil
		},
	}
}

func backupCommand() *cli.Command {
	return &cli.Command{
		Name:      "backup",
		Usage:     "Create a backup of the database",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("backup file path required for backup")
			}
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			backuper, ok := env.repo.(repositories.Backuper)
			if !ok {
				return errBackupUnsupported
			}

			backupFile := cmd.Args().First()
			f, err := os.Create(backupFile)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			defer f.Close()

			if err := backuper.Backup(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "Database backed up successfully to %s\n", backupFile)
			return nil
		},
	}
}

func restoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Restore database from backup",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("backup file path required for restore")
			}
			backupFile := cmd.Args().First()
			fi, err := os.Stat(backupFile)
			if err != nil {
				return fmt.Errorf("backup file does not exist: %s", backupFile)
			}
			if fi.Size() == 0 {
				return fmt.Errorf("backup file is empty: %s", backupFile)
			}

			env, err := setup(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			backuper, ok := env.repo.(repositories.Backuper)
			if !ok {
				return errBackupUnsupported
			}

			f, err := os.Open(backupFile)
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer f.Close()

			if err := backuper.Restore(f); err != nil {
				return err
			}
			fmt.Fprintln(cmd.Root().Writer, "Database restored successfully")
			return nil
		},
	}
}

func cleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove the blog database",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Do not ask for confirmation"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root := cmd.Root()
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return err
			}
			if cfg.Store == repositories.BackendMemory {
				fmt.Fprintln(root.Writer, "Nothing to clean for the memory store")
				return nil
			}
			dbPath := cfg.DBPath

			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Fprintln(root.Writer, "Database is already clean (does not exist)")
				return nil
			}

			if !cmd.Bool("yes") {
				fmt.Fprint(root.Writer, "Are you sure you want to clean the database? This cannot be undone. [y/N] ")
				response, _ := bufio.NewReader(root.Reader).ReadString('\n')
				response = strings.TrimSpace(response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(root.Writer, "Operation cancelled")
					return nil
				}
			}

			if err := os.RemoveAll(dbPath); err != nil {
				return fmt.Errorf("failed to clean database: %w", err)
			}
			fmt.Fprintln(root.Writer, "Database cleaned successfully")
			return nil
		},
	}
}
