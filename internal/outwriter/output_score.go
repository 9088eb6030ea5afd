package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeScoreResults outputs a full scoring report, dispatching based on the output format configured.
func writeScoreResults(overall schema.OverallScoreData, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, overall)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, overall, fmtFloat, fmtInt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(overall, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeScoreTable generates and writes the human-readable report.
func writeScoreTable(overall schema.OverallScoreData, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if overall.Client != "" {
		if _, err := fmt.Fprintf(writer, "Client: %s\n", overall.Client); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Overall score: %s/100 (%d/10) %s, confidence %s\n\n",
		fmtFloat(overall.WeightedScore), overall.NormalizedScore,
		tierLabel(overall.PerformanceLevel, cfg), overall.Confidence); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Metric", "Score", "Norm"}
	if cfg.Detail {
		headers = append(headers, "Insights")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, nr := range breakdownRows(overall.Breakdown) {
		row := []string{
			schema.MetricDisplayName[nr.name],
			fmtFloat(nr.result.Score),
			formatAdjusted(nr.result),
		}
		if cfg.Detail {
			row = append(row, firstInsight(nr.result))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeRecommendations(writer, overall.Recommendations); err != nil {
		return err
	}

	if cfg.Explain && len(overall.RedFlags) > 0 {
		if err := writeRedFlagTable(writer, overall.RedFlags, cfg, fmtFloat); err != nil {
			return err
		}
	} else if n := overall.RedFlagsCount(); n > 0 {
		if _, err := fmt.Fprintf(writer, "%d red flag(s) detected; rerun with --explain for details\n", n); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. History backend: %s\n", duration, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeRecommendations prints the ordered advice list.
func writeRecommendations(writer io.Writer, recs []string) error {
	if len(recs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(writer, "Recommendations:"); err != nil {
		return err
	}
	for i, rec := range recs {
		if _, err := fmt.Fprintf(writer, "  %d. %s\n", i+1, rec); err != nil {
			return err
		}
	}
	return nil
}

// writeRedFlagTable prints the detected red flags with severity coloring.
func writeRedFlagTable(writer io.Writer, flags []schema.RedFlag, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Flag", "Severity", "Penalty", "Message"})

	maxWidth := getMaxTableMessageWidth(cfg)
	var data [][]string
	for _, f := range flags {
		msg := f.Message
		if f.MissedRevenue != nil {
			msg = fmt.Sprintf("%s (est. $%s missed)", msg, fmtFloat(*f.MissedRevenue))
		}
		data = append(data, []string{
			string(f.Type),
			severityLabel(f.Severity, cfg),
			fmtFloat(f.ScorePenalty),
			contract.TruncateText(msg, maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeScoreCSV writes the per-metric breakdown in CSV format, one row per metric.
func writeScoreCSV(w io.Writer, overall schema.OverallScoreData, fmtFloat func(float64) string, fmtInt func(int) string) error {
	header := []string{
		"client",
		"metric",
		"score",
		"normalized",
		"adjusted",
		"red_flags",
		"overall_score",
		"performance_level",
		"confidence",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, nr := range breakdownRows(overall.Breakdown) {
			adjusted := ""
			if nr.result.AdjustedScore != nil {
				adjusted = fmtInt(*nr.result.AdjustedScore)
			}
			rec := []string{
				overall.Client,
				string(nr.name),
				fmtFloat(nr.result.Score),
				fmtInt(nr.result.NormalizedScore),
				adjusted,
				strconv.Itoa(len(nr.result.RedFlags)),
				fmtFloat(overall.WeightedScore),
				string(overall.PerformanceLevel),
				string(overall.Confidence),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// firstInsight returns the leading (overall assessment) insight of a result.
func firstInsight(r schema.ScoreResult) string {
	if len(r.Insights) == 0 {
		return ""
	}
	return r.Insights[0]
}

// namedRow pairs a metric name with its score result for ordered iteration.
type namedRow struct {
	name   schema.MetricName
	result schema.ScoreResult
}

// breakdownRows lists the five results in canonical metric order.
func breakdownRows(breakdown schema.ScoreBreakdown) []namedRow {
	return []namedRow{
		{schema.MetricAuthorityLinks, breakdown.AuthorityLinks},
		{schema.MetricAuthorityDomains, breakdown.AuthorityDomains},
		{schema.MetricTrafficGrowth, breakdown.TrafficGrowth},
		{schema.MetricRankings, breakdown.Rankings},
		{schema.MetricAIVisibility, breakdown.AIVisibility},
	}
}
