//go:build basic

// Package integration contains integration tests for seolens.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeolensScoreVerification scores the sample report end to end and
// verifies the JSON output against the documented scoring model.
func TestSeolensScoreVerification(t *testing.T) {
	reportPath := writeSampleReport(t, t.TempDir())

	cmd := exec.Command(getSeolensBinary(), "score", reportPath, "--output", "json", "--history-backend", "none")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.NoError(t, err)

	var overall map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &overall))

	assert.Equal(t, "acme-corp", overall["client"])

	score, ok := overall["overallScore"].(float64)
	require.True(t, ok, "overallScore should be numeric")
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)

	norm, ok := overall["normalizedScore"].(float64)
	require.True(t, ok, "normalizedScore should be numeric")
	assert.GreaterOrEqual(t, norm, 1.0)
	assert.LessOrEqual(t, norm, 10.0)

	// A 12-month engagement always reports high data confidence
	assert.Equal(t, "High", overall["confidence"])

	breakdown, ok := overall["scoreBreakdown"].(map[string]any)
	require.True(t, ok, "scoreBreakdown should be present")
	for _, metric := range []string{"authorityLinks", "authorityDomains", "trafficGrowth", "rankings", "aiVisibility"} {
		assert.Contains(t, breakdown, metric)
	}
}

// TestSeolensValidateGate verifies that the validate command rejects
// engagements below the minimum spend and duration.
func TestSeolensValidateGate(t *testing.T) {
	cmd := exec.Command(getSeolensBinary(), "validate", "--monthly-spend", "500", "--investment-months", "3")
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined
	err := cmd.Run()

	require.Error(t, err, "validate should exit non-zero for failing gates")
	assert.Contains(t, combined.String(), "Minimum $1000/month required for analysis")
	assert.Contains(t, combined.String(), "Minimum 6 months investment required for analysis")
}

// TestSeolensPartialScoring verifies partial scoring over an incomplete report.
func TestSeolensPartialScoring(t *testing.T) {
	dir := t.TempDir()
	partialReport := `{
		"client": "acme-corp",
		"authorityLinks": {"actualLinks": 54, "monthlySpend": 3000, "investmentMonths": 12},
		"trafficGrowth": {"growthPercent": 35, "competitorGrowth": [28, 40], "investmentMonths": 12, "topKeywordsDependency": 0.4}
	}`
	path := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(partialReport), 0o644))

	cmd := exec.Command(getSeolensBinary(), "partial", path, "--output", "json", "--history-backend", "none")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.NoError(t, err)

	var partial map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &partial))

	// Links (0.35) and traffic (0.20) cover 55% of the model weight
	assert.Equal(t, 55.0, partial["confidence"])

	missing, ok := partial["missingMetrics"].([]any)
	require.True(t, ok)
	assert.Len(t, missing, 3)
}
