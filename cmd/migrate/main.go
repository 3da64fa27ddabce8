package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"saaskit/config"
	logs "saaskit/internal/infra/log"
	"saaskit/internal/infra/persistence/migration"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, version, force")
		steps   = flag.Int("steps", 0, "Number of migration steps (for up/down)")
		version = flag.Uint("version", 0, "Target version (for force command)")
		dir     = flag.String("dir", migration.DefaultDir, "Migrations directory")
	)
	flag.Parse()

	if err := run(*command, *steps, *version, *dir); err != nil {
		slog.Error("Migration failed", slog.String("command", *command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string, steps int, version uint, dir string) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	slog.SetDefault(logger)

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to create PostgreSQL client: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get PostgreSQL sql.DB: %w", err)
	}
	defer sqlDB.Close()

	migrator, err := migration.New(sqlDB, dir)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		if err := migrator.Up(steps); err != nil {
			return err
		}
		logger.Info("Migrations applied", slog.String("dir", dir))
	case "down":
		if err := migrator.Down(steps); err != nil {
			return err
		}
		logger.Info("Migrations rolled back", slog.String("dir", dir))
	case "version":
		v, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		if dirty {
			return fmt.Errorf("database is in a dirty state (version %d)", v)
		}
		logger.Info("Current migration version", slog.Uint64("version", uint64(v)))
	case "force":
		if version == 0 {
			return fmt.Errorf("version required for force command (use -version flag)")
		}
		if err := migrator.Force(int(version)); err != nil {
			return err
		}
		logger.Info("Forced migration version", slog.Uint64("version", uint64(version)))
	default:
		return fmt.Errorf("unknown command: %s (supported: up, down, version, force)", command)
	}

	return nil
}
