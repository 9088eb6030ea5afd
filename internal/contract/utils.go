package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/seolens/seolens/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // criticalColor represents standard danger.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor represents strong, distinct warning.
	MediumColor   = color.New(color.FgYellow)              // mediumColor represents standard caution, not bold.
	GoodColor     = color.New(color.FgGreen)               // goodColor represents healthy results.
	InfoColor     = color.New(color.FgCyan)                // infoColor represents informational signal.
)

// ColorSeverity returns a colored severity label for console output.
func ColorSeverity(severity schema.Severity) string {
	switch severity {
	case schema.SeverityCritical:
		return CriticalColor.Sprint(string(severity))
	case schema.SeverityHigh:
		return HighColor.Sprint(string(severity))
	default:
		return MediumColor.Sprint(string(severity))
	}
}

// ColorPerformanceLevel returns a colored tier label for console output.
func ColorPerformanceLevel(level schema.PerformanceLevel) string {
	switch level {
	case schema.LevelExcellent, schema.LevelGood:
		return GoodColor.Sprint(string(level))
	case schema.LevelAverage:
		return MediumColor.Sprint(string(level))
	case schema.LevelPoor:
		return HighColor.Sprint(string(level))
	default:
		return CriticalColor.Sprint(string(level))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".seolens_history.db"
	}
	return filepath.Join(homeDir, ".seolens_history.db")
}

// TruncateText truncates a string to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for both the ellipsis and content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
