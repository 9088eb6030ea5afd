package cmd

import (
	"encoding/json"
	"time"

	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/loader"
	"github.com/seolens/seolens/internal/outwriter"
	"github.com/spf13/cobra"
)

// scoreCmd runs the full scoring pipeline over a complete report.
var scoreCmd = &cobra.Command{
	Use:   "score [input-file]",
	Short: "Score a complete client performance report.",
	Long: `Score a client performance report across all five metrics.

Reads a JSON report containing authority links, authority domains, traffic
growth, ranking improvements, and AI visibility data, then produces:
- A weighted overall score (0-100) and normalized tier (1-10)
- A performance level (Excellent, Good, Average, Poor, Critical)
- Red flags for spend/result mismatches and stalled metrics
- Prioritized recommendations for the weakest metrics

The report must meet the minimum engagement gates ($1000/month spend,
6 months duration) or scoring is refused.

Reads from stdin when the input file is omitted or given as '-'.

Examples:
  # Score a report from a file
  seolens score report.json

  # Score from stdin with full red-flag detail
  cat report.json | seolens score --explain --detail

  # Export the scored result as JSON
  seolens score report.json --output json --output-file scored.json`,
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
		overall, err := policy.Score(*report)
		if err != nil {
			contract.LogFatal("Cannot score report", err)
		}
		duration := time.Since(start)

		if store := storeManager.GetRunStore(); store != nil {
			params, _ := json.Marshal(cfg.Scoring)
			if _, err := store.SaveRun(overall, string(params)); err != nil {
				contract.LogWarn("Could not record run history", err)
			}
		}

		if err := outwriter.NewOutWriter().WriteScore(overall, cfg, duration); err != nil {
			contract.LogFatal("Cannot write score output", err)
		}
	},
}
