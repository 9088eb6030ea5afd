//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

// sampleReport is a complete scoring input used across integration tests.
const sampleReport = `{
	"client": "acme-corp",
	"authorityLinks": {"actualLinks": 54, "monthlySpend": 3000, "investmentMonths": 12, "recentLinks6Months": 20},
	"authorityDomains": {"clientDomains": 390, "competitorDomains": [420, 510, 480]},
	"trafficGrowth": {"growthPercent": 35, "competitorGrowth": [28, 40], "investmentMonths": 12, "topKeywordsDependency": 0.4},
	"rankingImprovements": {"changes": [{"keyword": "emergency plumber", "oldPosition": 15, "newPosition": 4, "commercial": true}], "investmentMonths": 12},
	"aiVisibility": {"keywords": [{"keyword": "best plumber", "mentionPosition": 3}], "investmentMonths": 12}
}`

var (
	// sharedSeolensPath holds the path to a shared seolens binary built once for all tests.
	sharedSeolensPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getSeolensBinary returns the path to the seolens binary, building it once if needed.
func getSeolensBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "seolens-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		seolensPath := filepath.Join(tempDir, "seolens")
		buildCmd := exec.Command("go", "build", "-o", seolensPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build seolens: %v", err))
		}

		sharedSeolensPath = seolensPath
	})

	return sharedSeolensPath
}

// writeSampleReport writes the shared fixture report into dir and returns its path.
func writeSampleReport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "report.json")
	if err := os.WriteFile(path, []byte(sampleReport), 0o644); err != nil {
		t.Fatalf("failed to write sample report: %v", err)
	}
	return path
}

func runSeolensCommand(t *testing.T, args ...string) error {
	seolensPath := getSeolensBinary()
	cmd := exec.Command(seolensPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
