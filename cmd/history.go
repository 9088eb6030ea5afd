package cmd

import (
	"fmt"

	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/outwriter"
	"github.com/seolens/seolens/internal/runstore"
	"github.com/seolens/seolens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by list and export commands)
	outputFile := viper.GetString("output-file")
	useColors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}

	// Initialize the store with the loaded config
	if err := runstore.InitHistory(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}
	storeManager = runstore.Manager

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")
	cfg.UseColors = useColors
	cfg.HistoryRows = viper.GetInt("rows")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = runstore.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by scoring commands. This avoids input loading
// and scoring config processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded scoring runs and exports",
	Long: `Manage historical scoring runs used for trend tracking and reporting.

When enabled, Seolens records every full scoring run, storing:
- Run metadata (timestamp, client, configuration)
- The overall score, tier, performance level, and confidence
- Per-metric raw and normalized scores with red-flag counts

This enables longitudinal tracking of client performance and data export
for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent scoring runs
  status  - Show run history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Show the last runs
  seolens history list

  # Export for analysis in pandas/DuckDB
  seolens history export --output-file seolens-data.parquet`,
}

// historyListCmd lists recent scoring runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent scoring runs, newest first",
	Long: `List recorded scoring runs with their scores and red-flag counts.

Examples:
  # Show the default number of runs
  seolens history list

  # Show more runs as CSV
  seolens history list --rows 100 --output csv`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetRunStore()
		if store == nil {
			contract.LogFatal("Cannot list runs", fmt.Errorf("run history is disabled"))
		}
		rows := cfg.HistoryRows
		if rows <= 0 {
			rows = contract.DefaultHistoryRows
		}
		runs, err := store.ListRuns(rows)
		if err != nil {
			contract.LogFatal("Cannot list runs", err)
		}
		if err := outwriter.NewOutWriter().WriteHistory(runs, cfg); err != nil {
			contract.LogFatal("Cannot write run history output", err)
		}
	},
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show detailed information about the run history store.

Displays:
- Backend type and connection status
- Total number of recorded runs
- The most recent run

Use this to:
- Verify run tracking is enabled and working
- Check database connection health

Examples:
  # Check run history status
  seolens history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.GetHistoryStatus(storeManager.GetRunStore(), cfg.HistoryBackend)
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		runstore.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded scoring runs",
	Long: `Delete all stored scoring runs and their per-metric rows.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  seolens history export --output-file backup.parquet
  seolens history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearHistory(cfg.HistoryBackend, runstore.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all recorded runs to Parquet format for use with analytics tools.

Exports two datasets:
- Score runs - one row per recorded run with the overall result
- Metric scores - per-metric raw and normalized scores for each run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  seolens history export --output-file seolens-data.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT * FROM read_parquet('seolens-data.parquet.score_runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExecuteHistoryExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the run store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  seolens history migrate

  # Migrate to specific version
  seolens history migrate --target-version 1

  # Rollback to initial state
  seolens history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
