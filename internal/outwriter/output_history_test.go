package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRuns() []schema.ScoreRunRecord {
	return []schema.ScoreRunRecord{
		{
			RunID:            2,
			Client:           "acme-corp",
			RunTime:          time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			WeightedScore:    58.4,
			NormalizedScore:  5,
			PerformanceLevel: "Poor",
			Confidence:       "High",
			RedFlagCount:     2,
		},
		{
			RunID:            1,
			Client:           "globex",
			RunTime:          time.Date(2026, 3, 13, 17, 5, 0, 0, time.UTC),
			WeightedScore:    82.1,
			NormalizedScore:  10,
			PerformanceLevel: "Excellent",
			Confidence:       "Medium",
			RedFlagCount:     0,
		},
	}
}

func TestWriteHistoryTable(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := plainConfig()

	var buf bytes.Buffer
	err := writeHistoryTable(sampleRuns(), cfg, fmtFloat, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "acme-corp")
	assert.Contains(t, out, "globex")
	assert.Contains(t, out, "58.4")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Showing 2 run(s)")
}

func TestWriteHistoryTableEmpty(t *testing.T) {
	fmtFloat, _ := createFormatters(1)
	cfg := plainConfig()

	var buf bytes.Buffer
	err := writeHistoryTable(nil, cfg, fmtFloat, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No recorded runs")
}

func TestWriteHistoryCSV(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeHistoryCSV(&buf, sampleRuns(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Contains(t, lines[0], "run_id")
	assert.Contains(t, lines[1], "acme-corp")
	assert.Contains(t, lines[2], "82.1")
}

func TestWriteHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeHistoryJSON(&buf, sampleRuns())
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(2), result[0]["runId"])
	assert.Equal(t, "acme-corp", result[0]["client"])
	assert.Equal(t, "Poor", result[0]["performanceLevel"])
}
