package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mflix-insights/storage"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:          "migrate [up|down|status|version|reset]",
	Short:        "Manage the mflix-insights SQLite schema",
	Args:         cobra.ExactArgs(1),
	ValidArgs:    []string{"up", "down", "status", "version", "reset"},
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&dataPath, "data", "./data", "Path to database directory")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	sqliteStorage := storage.NewSQLiteStorage(dataPath, logger)
	if err := sqliteStorage.Initialize(); err != nil {
		return err
	}
	defer sqliteStorage.Close()

	out := cmd.OutOrStdout()
	switch args[0] {
	case "up":
		if err := sqliteStorage.RunMigrations(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Migrations completed successfully")

	case "down":
		if err := sqliteStorage.RollbackMigration(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Migration rolled back successfully")

	case "status":
		migrationManager := sqliteStorage.GetMigrationManager()
		if err := migrationManager.Initialize(); err != nil {
			return err
		}
		return migrationManager.Status()

	case "version":
		version, err := sqliteStorage.GetDatabaseVersion()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Database version: %d\n", version)

	case "reset":
		if err := sqliteStorage.ResetDatabase(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Database reset completed successfully")

	default:
		return fmt.Errorf("unknown command %q (available: up, down, status, version, reset)", args[0])
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
