// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteScore prints a full scoring report using the configured output format.
func (ow *OutWriter) WriteScore(overall schema.OverallScoreData, cfg *contract.Config, duration time.Duration) error {
	return writeScoreResults(overall, cfg, duration)
}

// WritePartial prints a partial scoring report using the configured output format.
func (ow *OutWriter) WritePartial(partial schema.PartialScoreData, cfg *contract.Config, duration time.Duration) error {
	return writePartialResults(partial, cfg, duration)
}

// WriteMetrics prints the scoring model definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(scoring core.Config, cfg *contract.Config) error {
	return writeMetricsDefinitions(scoring, cfg)
}

// WriteHistory prints recorded scoring runs using the configured output format.
func (ow *OutWriter) WriteHistory(runs []schema.ScoreRunRecord, cfg *contract.Config) error {
	return writeHistoryResults(runs, cfg)
}
