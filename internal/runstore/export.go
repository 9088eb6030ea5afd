package runstore

import (
	"errors"
	"fmt"

	"github.com/seolens/seolens/internal/parquet"
	"github.com/seolens/seolens/schema"
)

// exportRunLimit bounds how many runs a single export reads.
const exportRunLimit = 100000

// ExecuteHistoryExport exports the recorded run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run history is not initialized")
	}

	total, err := store.CountRuns()
	if err != nil {
		return fmt.Errorf("failed to count runs: %w", err)
	}
	if total == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting %d scoring run(s)...\n", total)

	runs, err := store.ListRuns(exportRunLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve score runs: %w", err)
	}

	var metricRecords []schema.MetricScoreRecord
	for _, run := range runs {
		scores, err := store.ListMetricScores(run.RunID)
		if err != nil {
			return fmt.Errorf("failed to retrieve metric scores for run %d: %w", run.RunID, err)
		}
		metricRecords = append(metricRecords, scores...)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertScoreRunRecords(runs)
	parquetMetrics := parquet.ConvertMetricScoreRecords(metricRecords)

	// Write score runs to Parquet
	runsFile := outputFile + ".score_runs.parquet"
	if err := parquet.WriteScoreRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write score runs: %w", err)
	}
	fmt.Printf("Exported %d score runs to: %s\n", len(parquetRuns), runsFile)

	// Write metric scores to Parquet
	metricsFile := outputFile + ".metric_scores.parquet"
	if err := parquet.WriteMetricScoresParquet(parquetMetrics, metricsFile); err != nil {
		return fmt.Errorf("failed to write metric scores: %w", err)
	}
	fmt.Printf("Exported %d metric score records to: %s\n", len(parquetMetrics), metricsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
