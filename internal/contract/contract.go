// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "github.com/seolens/seolens/schema"

// RunStore defines the interface for recording and querying scoring runs.
// This allows the persistence layer to be mocked for testing; the scoring
// core itself never touches it.
type RunStore interface {
	// SaveRun persists one overall score with its per-metric rows and
	// returns the assigned run ID.
	SaveRun(overall schema.OverallScoreData, configParams string) (int64, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.ScoreRunRecord, error)

	// ListMetricScores returns the per-metric rows for a run.
	ListMetricScores(runID int64) ([]schema.MetricScoreRecord, error)

	// CountRuns returns the total number of recorded runs.
	CountRuns() (int64, error)

	// Clear removes all recorded runs.
	Clear() error

	// Close releases the underlying database handle.
	Close() error
}

// StoreManager defines the interface for managing the run store.
type StoreManager interface {
	GetRunStore() RunStore
}
