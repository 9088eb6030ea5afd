package cmd

import (
	"fmt"
	"os"

	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/internal/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// validateCmd checks the engagement gates without running any scoring.
var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Check whether an engagement meets the minimum scoring gates.",
	Long: `Check spend and duration against the minimum engagement requirements.

Both gates are checked independently, so a failing engagement reports
every unmet requirement at once:
- Monthly spend of at least $1000
- Investment duration of at least 6 months

Inputs come from --monthly-spend and --investment-months, or from the
authority links section of a report file when one is given.

Examples:
  # Validate explicit values
  seolens validate --monthly-spend 2500 --investment-months 8

  # Validate the values carried in a report
  seolens validate report.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		spend := viper.GetFloat64("monthly-spend")
		months := viper.GetInt("investment-months")

		if len(args) == 1 {
			report, err := loader.LoadScoreInput(cfg.InputFile)
			if err != nil {
				contract.LogFatal("Cannot load input report", err)
			}
			if report.AuthorityLinks == nil {
				contract.LogFatal("Cannot validate report", fmt.Errorf("missing authorityLinks section"))
			}
			spend = report.AuthorityLinks.MonthlySpend
			months = report.AuthorityLinks.InvestmentMonths
		}

		policy := core.NewPolicy(cfg.Scoring)
		if err := policy.ValidateScoreInputs(spend, months); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ $%.0f/month over %d months meets the minimum engagement requirements\n", spend, months)
	},
}
