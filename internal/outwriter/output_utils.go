package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtInt func(int) string) {
	fmtFloat = func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	fmtInt = strconv.Itoa
	return fmtFloat, fmtInt
}

// severityLabel picks the plain or colored severity label per the config.
func severityLabel(severity schema.Severity, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.ColorSeverity(severity)
	}
	return string(severity)
}

// tierLabel picks the plain or colored performance tier label per the config.
func tierLabel(level schema.PerformanceLevel, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.ColorPerformanceLevel(level)
	}
	return string(level)
}

// formatAdjusted renders the effective 1-10 score, marking penalty-adjusted values.
func formatAdjusted(r schema.ScoreResult) string {
	if r.AdjustedScore != nil {
		return fmt.Sprintf("%d (was %d)", *r.AdjustedScore, r.NormalizedScore)
	}
	return strconv.Itoa(r.NormalizedScore)
}

// getMaxTableMessageWidth calculates the maximum width for red-flag messages
// in table output based on terminal width and table configuration.
func getMaxTableMessageWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the type, severity and penalty columns with
	// borders, separators and padding.
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 20 {
		// Minimum reasonable message width
		return 20
	}
	if available > 90 {
		// Maximum message width to prevent overly wide tables
		return 90
	}
	return available
}
