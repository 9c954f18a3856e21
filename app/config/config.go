package config

import (
	"fmt"
	"slices"

	"blogshell/app/logging"
	"blogshell/app/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/urfave/cli/v3"
)

var validate = validator.New()

// Config holds the process level settings shared by every subcommand.
type Config struct {
	Store    string `validate:"oneof=badger sqlite memory"`
	DBPath   string `validate:"required_unless=Store memory"`
	LogLevel string `validate:"oneof=debug info warn error"`
	Addr     string `validate:"required"`
	Fallback bool
}

// default database locations per backend
var defaultPaths = map[string]string{
	repositories.BackendBadger: "data/badger",
	repositories.BackendSQLite: "data/blogs.db",
}

// Flag names
const (
	StoreFlag    = "store"
	DBPathFlag   = "db-path"
	FallbackFlag = "memory-fallback"
	LogLevelFlag = "log-level"
	AddrFlag     = "addr"
)

// Flags returns fresh instances of the global flags
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    StoreFlag,
			Aliases: []string{"s"},
			Usage:   "Storage backend: badger, sqlite or memory",
			Value:   repositories.BackendBadger,
			Sources: cli.EnvVars("BLOGSHELL_STORE"),
		},
		&cli.StringFlag{
			Name:    DBPathFlag,
			Aliases: []string{"d"},
			Usage:   "Database location (defaults to data/badger or data/blogs.db)",
			Sources: cli.EnvVars("BLOGSHELL_DB_PATH"),
		},
		&cli.BoolFlag{
			Name:    FallbackFlag,
			Usage:   "Run in memory-only mode when the storage backend cannot be opened",
			Value:   true,
			Sources: cli.EnvVars("BLOGSHELL_MEMORY_FALLBACK"),
		},
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Aliases: []string{"l"},
			Usage:   "The level of the logs",
			Value:   "warn",
			Validator: func(value string) error {
				if !slices.Contains(logging.Levels, value) {
					return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, logging.Levels)
				}
				return nil
			},
			Sources: cli.EnvVars("BLOGSHELL_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    AddrFlag,
			Aliases: []string{"a"},
			Usage:   "Listen address of the HTTP command endpoint",
			Value:   ":8080",
			Sources: cli.EnvVars("BLOGSHELL_ADDR"),
		},
	}
}

// FromCommand reads the global flags of cmd into a validated Config
func FromCommand(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		Store:    cmd.String(StoreFlag),
		DBPath:   cmd.String(DBPathFlag),
		LogLevel: cmd.String(LogLevelFlag),
		Addr:     cmd.String(AddrFlag),
		Fallback: cmd.Bool(FallbackFlag),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultPaths[cfg.Store]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
