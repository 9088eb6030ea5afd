package cmd

import (
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/outwriter"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of the scoring model.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display weights and definitions for all scoring metrics",
	Long: `Show the weights, purpose, and contributing factors of every metric.

Provides complete transparency into how reports are scored, including:
- Metric names and their contribution weights
- What each metric measures and which inputs feed it
- The minimum engagement gates applied before scoring

No report is read - this is purely informational.

Use this to:
- Explain the scoring model to clients and account teams
- Document scoring methodology in reports

Examples:
  # Show the scoring model
  seolens metrics

  # Machine-readable model definition
  seolens metrics --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteMetrics(cfg.Scoring, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
