package runstore

import (
	"path/filepath"
	"testing"

	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a SQLite store backed by a temp file.
func newTestStore(t *testing.T) contract.RunStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history_test.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testOverall(client string) schema.OverallScoreData {
	adjusted := 4
	return schema.OverallScoreData{
		Client:           client,
		WeightedScore:    58.4,
		NormalizedScore:  5,
		PerformanceLevel: schema.LevelPoor,
		Breakdown: schema.ScoreBreakdown{
			AuthorityLinks:   schema.ScoreResult{Score: 62.0, NormalizedScore: 6},
			AuthorityDomains: schema.ScoreResult{Score: 80.0, NormalizedScore: 10},
			TrafficGrowth:    schema.ScoreResult{Score: 55.0, NormalizedScore: 5},
			Rankings: schema.ScoreResult{
				Score:           48.0,
				NormalizedScore: 5,
				AdjustedScore:   &adjusted,
				RedFlags: []schema.RedFlag{
					{Type: schema.FlagNoCommercialRankings, Severity: schema.SeverityHigh, ScorePenalty: -1},
				},
			},
			AIVisibility: schema.ScoreResult{Score: 30.0, NormalizedScore: 2},
		},
		RedFlags: []schema.RedFlag{
			{Type: schema.FlagNoCommercialRankings, Severity: schema.SeverityHigh, ScorePenalty: -1},
		},
		Confidence: schema.ConfidenceHigh,
	}
}

func TestSaveRunRoundtrip(t *testing.T) {
	store := newTestStore(t)

	runID, err := store.SaveRun(testOverall("acme-corp"), `{"weights":"default"}`)
	require.NoError(t, err)
	assert.Positive(t, runID)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, runID, run.RunID)
	assert.Equal(t, "acme-corp", run.Client)
	assert.InDelta(t, 58.4, run.WeightedScore, 1e-9)
	assert.Equal(t, 5, run.NormalizedScore)
	assert.Equal(t, "Poor", run.PerformanceLevel)
	assert.Equal(t, "High", run.Confidence)
	assert.Equal(t, 1, run.RedFlagCount)
	require.NotNil(t, run.ConfigParams)
	assert.Equal(t, `{"weights":"default"}`, *run.ConfigParams)
	assert.False(t, run.RunTime.IsZero())
}

func TestListMetricScores(t *testing.T) {
	store := newTestStore(t)

	runID, err := store.SaveRun(testOverall("acme-corp"), "")
	require.NoError(t, err)

	scores, err := store.ListMetricScores(runID)
	require.NoError(t, err)
	require.Len(t, scores, 5)

	byMetric := make(map[string]schema.MetricScoreRecord)
	for _, s := range scores {
		assert.Equal(t, runID, s.RunID)
		byMetric[s.Metric] = s
	}

	links := byMetric["authorityLinks"]
	assert.InDelta(t, 62.0, links.RawScore, 1e-9)
	assert.Equal(t, 6, links.NormalizedScore)
	assert.Nil(t, links.AdjustedScore)

	rankings := byMetric["rankings"]
	require.NotNil(t, rankings.AdjustedScore)
	assert.Equal(t, 4, *rankings.AdjustedScore)
	assert.Equal(t, 1, rankings.RedFlagCount)
}

func TestListRunsOrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	for _, client := range []string{"first", "second", "third"} {
		_, err := store.SaveRun(testOverall(client), "")
		require.NoError(t, err)
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first
	assert.Equal(t, "third", runs[0].Client)
	assert.Equal(t, "second", runs[1].Client)
}

func TestCountRunsAndClear(t *testing.T) {
	store := newTestStore(t)

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, count)

	runID, err := store.SaveRun(testOverall("acme-corp"), "")
	require.NoError(t, err)

	count, err = store.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.Clear())

	count, err = store.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, count)

	scores, err := store.ListMetricScores(runID)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.SaveRun(testOverall("acme-corp"), "")
	require.NoError(t, err)
	assert.Zero(t, runID)

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.NoError(t, store.Clear())
}

func TestNewRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore(schema.DatabaseBackend("cassandra"), "")
	assert.Error(t, err)
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name        string
		table       string
		expectError bool
	}{
		{"valid name", "seolens_score_runs", false},
		{"valid with leading underscore", "_runs", false},
		{"empty", "", true},
		{"injection attempt", "runs; DROP TABLE users", true},
		{"starts with digit", "1runs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "\"seolens_score_runs\"", quoteTableName("seolens_score_runs", schema.SQLiteBackend))
	assert.Equal(t, "`seolens_score_runs`", quoteTableName("seolens_score_runs", schema.MySQLBackend))
	assert.Equal(t, "\"seolens_score_runs\"", quoteTableName("seolens_score_runs", schema.PostgreSQLBackend))
}

func TestGetHistoryStatus(t *testing.T) {
	t.Run("disconnected for none backend", func(t *testing.T) {
		status, err := GetHistoryStatus(nil, schema.NoneBackend)
		require.NoError(t, err)
		assert.False(t, status.Connected)
	})

	t.Run("populated store", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.SaveRun(testOverall("acme-corp"), "")
		require.NoError(t, err)

		status, err := GetHistoryStatus(store, schema.SQLiteBackend)
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Equal(t, int64(1), status.TotalRuns)
		require.NotNil(t, status.LastRun)
		assert.Equal(t, "acme-corp", status.LastRun.Client)
	})
}

func TestMockRunStore(t *testing.T) {
	store := new(MockRunStore)
	store.On("CountRuns").Return(int64(3), nil)
	store.On("Clear").Return(nil)

	count, err := store.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, store.Clear())

	store.AssertExpectations(t)
}
