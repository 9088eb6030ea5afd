package runstore

import (
	"fmt"

	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"
)

// GetHistoryStatus gathers status information about the run history store.
func GetHistoryStatus(store contract.RunStore, backend schema.DatabaseBackend) (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:   string(backend),
		Connected: store != nil && backend != schema.NoneBackend,
	}
	if !status.Connected {
		return status, nil
	}

	total, err := store.CountRuns()
	if err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	status.TotalRuns = total

	if total > 0 {
		runs, err := store.ListRuns(1)
		if err != nil {
			return status, fmt.Errorf("failed to get last run: %w", err)
		}
		if len(runs) > 0 {
			status.LastRun = &runs[0]
		}
	}

	return status, nil
}

// PrintHistoryStatus prints run history status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.LastRun != nil {
		fmt.Printf("Last Run ID: %d\n", status.LastRun.RunID)
		fmt.Printf("Last Run: %s\n", status.LastRun.RunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Last Client: %s\n", status.LastRun.Client)
	}
}
