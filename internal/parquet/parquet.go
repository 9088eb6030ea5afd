// Package parquet provides data structures and functions for exporting seolens
// run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/seolens/seolens/schema"
)

// ScoreRun represents a single scoring run with metadata.
// This struct maps to the seolens_score_runs database table.
type ScoreRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Client is the scored client identifier
	Client string `parquet:"client,snappy"`

	// RunTime is when the run happened (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// WeightedScore is the overall weighted score on the 0-100 scale
	WeightedScore float64 `parquet:"weighted_score,snappy"`

	// NormalizedScore is the bucketed 1-10 score
	NormalizedScore int32 `parquet:"normalized_score,snappy"`

	// PerformanceLevel is the qualitative tier for the run
	PerformanceLevel string `parquet:"performance_level,snappy"`

	// Confidence is the qualitative confidence level for the run
	Confidence string `parquet:"confidence,snappy"`

	// RedFlagCount is the number of red flags the run raised
	RedFlagCount int32 `parquet:"red_flag_count,snappy"`

	// ConfigParams contains the JSON-encoded scoring configuration (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// MetricScore represents one metric result within a scoring run.
// This struct maps to the seolens_metric_scores database table.
type MetricScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Metric is the metric name
	Metric string `parquet:"metric,snappy"`

	// RawScore is the raw metric score on the 0-100 scale
	RawScore float64 `parquet:"raw_score,snappy"`

	// NormalizedScore is the bucketed 1-10 score
	NormalizedScore int32 `parquet:"normalized_score,snappy"`

	// AdjustedScore is the penalty-adjusted score (nullable)
	AdjustedScore *int32 `parquet:"adjusted_score,optional,snappy"`

	// RedFlagCount is the number of red flags the metric raised
	RedFlagCount int32 `parquet:"red_flag_count,snappy"`
}

// WriteScoreRunsParquet writes a slice of ScoreRun structs to a Parquet file.
func WriteScoreRunsParquet(data []ScoreRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScoreRun struct tags
	writer := parquet.NewGenericWriter[ScoreRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteMetricScoresParquet writes a slice of MetricScore structs to a Parquet file.
func WriteMetricScoresParquet(data []MetricScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the MetricScore struct tags
	writer := parquet.NewGenericWriter[MetricScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchScoreRuns generates sample ScoreRun data for demonstration.
func MockFetchScoreRuns() []ScoreRun {
	now := time.Now()
	configParams := `{"weights":{"authorityLinks":0.35,"authorityDomains":0.2,"trafficGrowth":0.2,"rankings":0.15,"aiVisibility":0.1}}`

	return []ScoreRun{
		{
			RunID:            1,
			Client:           "acme-corp",
			RunTime:          now.Add(-24 * time.Hour),
			WeightedScore:    58.4,
			NormalizedScore:  6,
			PerformanceLevel: "Average",
			Confidence:       "High",
			RedFlagCount:     2,
			ConfigParams:     &configParams,
		},
		{
			RunID:            2,
			Client:           "globex",
			RunTime:          now.Add(-2 * time.Hour),
			WeightedScore:    82.1,
			NormalizedScore:  9,
			PerformanceLevel: "Excellent",
			Confidence:       "Medium",
			RedFlagCount:     0,
			ConfigParams:     nil, // No config stored - nullable field
		},
	}
}

// MockFetchMetricScores generates sample MetricScore data for demonstration.
func MockFetchMetricScores() []MetricScore {
	adjusted := int32(4)

	return []MetricScore{
		{
			RunID:           1,
			Metric:          "authorityLinks",
			RawScore:        62.0,
			NormalizedScore: 6,
			AdjustedScore:   nil,
			RedFlagCount:    0,
		},
		{
			RunID:           1,
			Metric:          "rankings",
			RawScore:        48.0,
			NormalizedScore: 5,
			AdjustedScore:   &adjusted, // Penalized - nullable field populated
			RedFlagCount:    1,
		},
		{
			RunID:           2,
			Metric:          "authorityLinks",
			RawScore:        95.0,
			NormalizedScore: 10,
			AdjustedScore:   nil,
			RedFlagCount:    0,
		},
	}
}

// ConvertScoreRunRecords converts schema.ScoreRunRecord to ScoreRun for Parquet export.
func ConvertScoreRunRecords(records []schema.ScoreRunRecord) []ScoreRun {
	result := make([]ScoreRun, len(records))
	for i, record := range records {
		result[i] = ScoreRun{
			RunID:            record.RunID,
			Client:           record.Client,
			RunTime:          record.RunTime,
			WeightedScore:    record.WeightedScore,
			NormalizedScore:  int32(record.NormalizedScore),
			PerformanceLevel: record.PerformanceLevel,
			Confidence:       record.Confidence,
			RedFlagCount:     int32(record.RedFlagCount),
			ConfigParams:     record.ConfigParams,
		}
	}
	return result
}

// ConvertMetricScoreRecords converts schema.MetricScoreRecord to MetricScore for Parquet export.
func ConvertMetricScoreRecords(records []schema.MetricScoreRecord) []MetricScore {
	result := make([]MetricScore, len(records))
	for i, record := range records {
		var adjusted *int32
		if record.AdjustedScore != nil {
			v := int32(*record.AdjustedScore)
			adjusted = &v
		}
		result[i] = MetricScore{
			RunID:           record.RunID,
			Metric:          record.Metric,
			RawScore:        record.RawScore,
			NormalizedScore: int32(record.NormalizedScore),
			AdjustedScore:   adjusted,
			RedFlagCount:    int32(record.RedFlagCount),
		}
	}
	return result
}
