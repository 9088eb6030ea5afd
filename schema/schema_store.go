package schema

import "time"

// ScoreRunRecord represents a row from the seolens_score_runs table.
type ScoreRunRecord struct {
	RunID            int64
	Client           string
	RunTime          time.Time
	WeightedScore    float64
	NormalizedScore  int
	PerformanceLevel string
	Confidence       string
	RedFlagCount     int
	ConfigParams     *string // JSON-encoded weight/threshold configuration, when recorded
}

// HistoryStatus summarizes the state of the run history store.
type HistoryStatus struct {
	Backend   string
	Connected bool
	TotalRuns int64
	LastRun   *ScoreRunRecord
}

// MetricScoreRecord represents a row from the seolens_metric_scores table.
type MetricScoreRecord struct {
	RunID           int64
	Metric          string
	RawScore        float64
	NormalizedScore int
	AdjustedScore   *int
	RedFlagCount    int
}
