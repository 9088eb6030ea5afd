package cmd

import (
	"time"

	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/loader"
	"github.com/seolens/seolens/internal/outwriter"
	"github.com/spf13/cobra"
)

// partialCmd scores a report with one or more metric sections missing.
var partialCmd = &cobra.Command{
	Use:   "partial [input-file]",
	Short: "Score an incomplete report over the metrics it carries.",
	Long: `Score a report that is missing one or more metric sections.

Unlike 'score', partial scoring never refuses input: available metrics are
scored and reweighted proportionally, and the result carries a data
confidence percentage reflecting how much of the model's weight was
covered by actual data.

Use this early in an engagement when only some data sources report yet.
Partial results are never recorded in run history.

Reads from stdin when the input file is omitted or given as '-'.

Examples:
  # Score whatever metrics the report carries
  seolens partial early-report.json

  # Machine-readable partial result
  seolens partial early-report.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		report, err := loader.LoadScoreInput(cfg.InputFile)
		if err != nil {
			contract.LogFatal("Cannot load input report", err)
		}
		if cfg.Client != "" {
			report.Client = cfg.Client
		}

		policy := core.NewPolicy(cfg.Scoring)
		partial := policy.PartialScore(*report)
		duration := time.Since(start)

		if err := outwriter.NewOutWriter().WritePartial(partial, cfg, duration); err != nil {
			contract.LogFatal("Cannot write partial score output", err)
		}
	},
}
