// Command migration applies the SQL migrations under db/migrations.
//
// Usage:
//
//	migration up
//	migration down 1
//	migration version
//	migration force 1
//	migration goto 1
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

var logger = logging.New(logging.Options{Format: logging.FormatConsole, Service: "pl-dashboard-migration"})

func main() {
	_ = godotenv.Load(".env")

	if err := rootCmd().Execute(); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func rootCmd() *cobra.Command {
	var dbURL, dir string
	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply pl-dashboard database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbURL, "db-url", "", "database URL (default $DB_URL)")
	root.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (default $MIGRATIONS_DIR or ./db/migrations)")

	open := func() (*migrate.Migrate, string, error) {
		return openMigrator(dbURL, dir)
	}

	root.AddCommand(
		upCmd(open),
		downCmd(open),
		versionCmd(open),
		forceCmd(open),
		gotoCmd(open),
	)
	return root
}

type openFunc func() (*migrate.Migrate, string, error)

func upCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, source, err := open()
			if err != nil {
				return err
			}
			defer closeMigrator(m)

			if err := ignoreNoChange(m.Up()); err != nil {
				return err
			}
			logger.Info("migrations applied", "source", source)
			return nil
		},
	}
}

func downCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1 step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			m, _, err := open()
			if err != nil {
				return err
			}
			defer closeMigrator(m)

			if err := ignoreNoChange(m.Steps(-steps)); err != nil {
				return err
			}
			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}
}

func versionCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the applied version and dirty flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := open()
			if err != nil {
				return err
			}
			defer closeMigrator(m)

			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "version: none")
				fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
			return nil
		},
	}
}

func forceCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := parseVersion(args[0])
			if err != nil {
				return err
			}
			m, _, err := open()
			if err != nil {
				return err
			}
			defer closeMigrator(m)

			if err := m.Force(version); err != nil {
				return fmt.Errorf("force version %d: %w", version, err)
			}
			logger.Info("migration version forced", "version", version)
			return nil
		},
	}
}

func gotoCmd(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "goto <version>",
		Aliases: []string{"migrate"},
		Short:   "Migrate up or down to a target version",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			target, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			m, _, err := open()
			if err != nil {
				return err
			}
			defer closeMigrator(m)

			if err := ignoreNoChange(m.Migrate(target)); err != nil {
				return err
			}
			logger.Info("migrated to version", "version", target)
			return nil
		},
	}
}

func openMigrator(dbURL, dir string) (*migrate.Migrate, string, error) {
	dbURL = strings.TrimSpace(dbURL)
	if dbURL == "" {
		dbURL = strings.TrimSpace(os.Getenv("DB_URL"))
	}
	if dbURL == "" {
		return nil, "", errors.New("DB_URL is required")
	}
	dbURL = normalizeDBURL(dbURL, envBool("DB_DISABLE_PREPARED_BINARY_RESULT"))

	migrationsDir, err := resolveMigrationsDir(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolve migrations dir: %w", err)
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, "", fmt.Errorf("create migrator: %w", err)
	}
	return m, sourceURL, nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}
