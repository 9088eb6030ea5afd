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

// writePartialResults outputs a partial scoring report, dispatching based on the output format configured.
func writePartialResults(partial schema.PartialScoreData, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, partial)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePartialCSV(w, partial, fmtFloat, fmtInt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePartialTable(partial, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writePartialTable generates and writes the human-readable partial report.
func writePartialTable(partial schema.PartialScoreData, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if partial.Client != "" {
		if _, err := fmt.Fprintf(writer, "Client: %s\n", partial.Client); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Partial score: %s/100 (%d/10), data confidence %s%%\n\n",
		fmtFloat(partial.WeightedScore), partial.NormalizedScore, fmtFloat(partial.Confidence)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	headers := []string{"Metric", "Score", "Norm"}
	if cfg.Detail {
		headers = append(headers, "Insights")
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, name := range schema.AllMetrics {
		result, ok := partial.Breakdown[name]
		if !ok {
			continue
		}
		row := []string{
			schema.MetricDisplayName[name],
			fmtFloat(result.Score),
			formatAdjusted(result),
		}
		if cfg.Detail {
			row = append(row, firstInsight(result))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(partial.MissingMetrics) > 0 {
		if _, err := fmt.Fprint(writer, "Missing metrics:"); err != nil {
			return err
		}
		for _, name := range partial.MissingMetrics {
			if _, err := fmt.Fprintf(writer, " %s", schema.MetricDisplayName[name]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Scoring completed in %v over %d of %d metrics\n",
		duration, len(partial.AvailableMetrics), len(schema.AllMetrics)); err != nil {
		return err
	}
	return nil
}

// writePartialCSV writes the available metric results in CSV format.
func writePartialCSV(w io.Writer, partial schema.PartialScoreData, fmtFloat func(float64) string, fmtInt func(int) string) error {
	header := []string{
		"client",
		"metric",
		"score",
		"normalized",
		"adjusted",
		"red_flags",
		"partial_score",
		"confidence_percent",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, name := range schema.AllMetrics {
			result, ok := partial.Breakdown[name]
			if !ok {
				continue
			}
			adjusted := ""
			if result.AdjustedScore != nil {
				adjusted = fmtInt(*result.AdjustedScore)
			}
			rec := []string{
				partial.Client,
				string(name),
				fmtFloat(result.Score),
				fmtInt(result.NormalizedScore),
				adjusted,
				strconv.Itoa(len(result.RedFlags)),
				fmtFloat(partial.WeightedScore),
				fmtFloat(partial.Confidence),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
