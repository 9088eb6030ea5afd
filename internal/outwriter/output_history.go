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

// historyTimeFormat renders run timestamps in table and CSV output.
const historyTimeFormat = time.DateTime

// writeHistoryResults outputs recorded scoring runs, dispatching based on the output format configured.
func writeHistoryResults(runs []schema.ScoreRunRecord, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, runs, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(runs, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable run history.
func writeHistoryTable(runs []schema.ScoreRunRecord, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(writer, "No recorded runs")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Time", "Client", "Score", "Norm", "Level", "Confidence", "Flags"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, run := range runs {
		data = append(data, []string{
			strconv.FormatInt(run.RunID, 10),
			run.RunTime.Format(historyTimeFormat),
			contract.TruncateText(run.Client, 25),
			fmtFloat(run.WeightedScore),
			strconv.Itoa(run.NormalizedScore),
			tierLabel(schema.PerformanceLevel(run.PerformanceLevel), cfg),
			run.Confidence,
			strconv.Itoa(run.RedFlagCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Showing %d run(s)\n", len(runs))
	return err
}

// writeHistoryCSV writes the run history in CSV format.
func writeHistoryCSV(w io.Writer, runs []schema.ScoreRunRecord, fmtFloat func(float64) string) error {
	header := []string{
		"run_id",
		"run_time",
		"client",
		"score",
		"normalized",
		"performance_level",
		"confidence",
		"red_flags",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, run := range runs {
			rec := []string{
				strconv.FormatInt(run.RunID, 10),
				run.RunTime.Format(historyTimeFormat),
				run.Client,
				fmtFloat(run.WeightedScore),
				strconv.Itoa(run.NormalizedScore),
				run.PerformanceLevel,
				run.Confidence,
				strconv.Itoa(run.RedFlagCount),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeHistoryJSON writes the run history in JSON format.
func writeHistoryJSON(w io.Writer, runs []schema.ScoreRunRecord) error {
	type jsonRun struct {
		RunID            int64   `json:"runId"`
		RunTime          string  `json:"runTime"`
		Client           string  `json:"client"`
		WeightedScore    float64 `json:"overallScore"`
		NormalizedScore  int     `json:"normalizedScore"`
		PerformanceLevel string  `json:"performanceLevel"`
		Confidence       string  `json:"confidence"`
		RedFlagCount     int     `json:"redFlagCount"`
	}

	output := make([]jsonRun, len(runs))
	for i, run := range runs {
		output[i] = jsonRun{
			RunID:            run.RunID,
			RunTime:          run.RunTime.Format(time.RFC3339),
			Client:           run.Client,
			WeightedScore:    run.WeightedScore,
			NormalizedScore:  run.NormalizedScore,
			PerformanceLevel: run.PerformanceLevel,
			Confidence:       run.Confidence,
			RedFlagCount:     run.RedFlagCount,
		}
	}
	return writeJSON(w, output)
}
