// Package main provides a performance benchmarking tool for the Seolens CLI.
// It measures scoring execution times across synthetic reports of different
// sizes, running each test multiple times, treating the first successful run
// as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - seolens binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic reports and the history DB are written
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-history average, cold run and average of warm runs).
type BenchmarkResult struct {
	Report        string
	Command       string
	NoHistoryTime string
	ColdTime      string
	WarmTime      string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir       string
	Timeout       time.Duration
	NoHistoryRuns int
	HistoryRuns   int
	ReportSizes   map[string]int // report name -> ranking change / keyword count
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:       workDir,
		Timeout:       time.Minute,
		NoHistoryRuns: 3,
		HistoryRuns:   4,
		ReportSizes: map[string]int{
			"small":  10,
			"medium": 500,
			"large":  10000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear run history using seolens history clear
	fmt.Printf("Clearing run history...\n")
	clearCmd := exec.Command("seolens", "history", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run history cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the seolens binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if seolens is available
	if _, err := exec.LookPath("seolens"); err != nil {
		return fmt.Errorf("seolens binary not found in PATH")
	}

	if _, err := os.Stat(config.WorkDir); os.IsNotExist(err) {
		return fmt.Errorf("work directory not found at %s", config.WorkDir)
	}

	return nil
}

// generateReport writes a synthetic report with n ranking changes and n AI
// keywords, returning its path.
func generateReport(config BenchmarkConfig, name string, n int) (string, error) {
	var changes, keywords []string
	for i := range n {
		changes = append(changes, fmt.Sprintf(
			`{"keyword": "keyword-%d", "oldPosition": %d, "newPosition": %d, "commercial": %t}`,
			i, 20+(i%80), 1+(i%20), i%2 == 0))
		keywords = append(keywords, fmt.Sprintf(
			`{"keyword": "keyword-%d", "mentionPosition": %d}`, i, 1+(i%10)))
	}

	report := fmt.Sprintf(`{
		"client": "bench-%s",
		"authorityLinks": {"actualLinks": 54, "monthlySpend": 3000, "investmentMonths": 12},
		"authorityDomains": {"clientDomains": 390, "competitorDomains": [420, 510, 480]},
		"trafficGrowth": {"growthPercent": 35, "competitorGrowth": [28, 40], "investmentMonths": 12, "topKeywordsDependency": 0.4},
		"rankingImprovements": {"changes": [%s], "investmentMonths": 12},
		"aiVisibility": {"keywords": [%s], "investmentMonths": 12}
	}`, name, strings.Join(changes, ","), strings.Join(keywords, ","))

	path := filepath.Join(config.WorkDir, fmt.Sprintf("report_%s.json", name))
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// runBenchmarks executes all benchmark tests across report sizes
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d report sizes, %v timeout, no-history: %d runs, history: %d runs\n",
		len(config.ReportSizes), config.Timeout, config.NoHistoryRuns, config.HistoryRuns)

	for _, name := range []string{"small", "medium", "large"} {
		n := config.ReportSizes[name]
		fmt.Printf("Benchmarking %s report (%d rows)\n", name, n)

		reportPath, err := generateReport(config, name, n)
		if err != nil {
			fmt.Printf("Warning: failed to generate %s report: %v\n", name, err)
			continue
		}

		results = append(results, runBenchmarkSuite(config, name, reportPath, "score"))
	}

	return results
}

// runBenchmarkSuite runs both no-history and history benchmarks for a report
func runBenchmarkSuite(config BenchmarkConfig, name, reportPath, command string) BenchmarkResult {
	fmt.Printf("Running %s on %s report\n", command, name)

	// Helper to run a benchmark phase
	runPhase := func(historyBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, reportPath, command, historyBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-history runs
	_, noHistoryAvg := runPhase("none", config.NoHistoryRuns, "No-history")

	// Phase 2: History runs
	coldTime, warmAvg := runPhase("sqlite", config.HistoryRuns, "History")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-history average: %s, Cold time: %s, Warm average: %s\n", noHistoryAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Report:        name,
		Command:       command,
		NoHistoryTime: noHistoryAvg,
		ColdTime:      coldTimeStr,
		WarmTime:      warmAvg,
	}
}

// runBenchmark executes a seolens command multiple times with the specified
// history backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, reportPath, command, historyBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, reportPath, "--history-backend", historyBackend}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("seolens", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Scoring completed in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/seolens_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"report", "cmd", "no_history_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Report, result.Command, result.NoHistoryTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	fmt.Printf("Score Analysis:\n")
	for _, result := range results {
		fmt.Printf("  %-12s: No-history: %s, Cold: %s, Warm: %s\n", result.Report, result.NoHistoryTime, result.ColdTime, result.WarmTime)
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
