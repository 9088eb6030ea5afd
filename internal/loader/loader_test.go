package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `{
	"client": "acme-corp",
	"authorityLinks": {
		"actualLinks": 54,
		"monthlySpend": 3000,
		"investmentMonths": 12,
		"recentLinks6Months": 20,
		"quality": {"highQuality": 30, "mediumQuality": 18, "lowQuality": 6}
	},
	"authorityDomains": {
		"clientDomains": 390,
		"competitorDomains": [420, 510, 480]
	},
	"trafficGrowth": {
		"growthPercent": 35,
		"competitorGrowth": [28, 40],
		"investmentMonths": 12,
		"topKeywordsDependency": 0.4
	},
	"rankingImprovements": {
		"changes": [
			{"keyword": "emergency plumber", "oldPosition": 15, "newPosition": 4, "commercial": true}
		],
		"investmentMonths": 12
	},
	"aiVisibility": {
		"keywords": [
			{"keyword": "best plumber", "mentionPosition": 3}
		],
		"investmentMonths": 12
	}
}`

func TestParseScoreInput(t *testing.T) {
	input, err := ParseScoreInput([]byte(sampleReport))
	require.NoError(t, err)

	assert.Equal(t, "acme-corp", input.Client)
	require.NotNil(t, input.AuthorityLinks)
	assert.Equal(t, 54, input.AuthorityLinks.ActualLinks)
	assert.InDelta(t, 3000.0, input.AuthorityLinks.MonthlySpend, 1e-9)
	require.NotNil(t, input.AuthorityLinks.RecentLinks6Months)
	assert.Equal(t, 20, *input.AuthorityLinks.RecentLinks6Months)
	require.NotNil(t, input.AuthorityLinks.Quality)
	assert.Equal(t, 30, input.AuthorityLinks.Quality.HighQuality)

	require.NotNil(t, input.AuthorityDomains)
	assert.Equal(t, []int{420, 510, 480}, input.AuthorityDomains.CompetitorDomains)

	require.NotNil(t, input.RankingImprovements)
	require.Len(t, input.RankingImprovements.Changes, 1)
	assert.True(t, input.RankingImprovements.Changes[0].Commercial)

	require.NotNil(t, input.AIVisibility)
	assert.Equal(t, 3, input.AIVisibility.Keywords[0].MentionPosition)
}

func TestParseScoreInputPartial(t *testing.T) {
	input, err := ParseScoreInput([]byte(`{"client": "minimal", "authorityDomains": {"clientDomains": 10, "competitorDomains": [20]}}`))
	require.NoError(t, err)

	assert.Equal(t, "minimal", input.Client)
	assert.Nil(t, input.AuthorityLinks)
	assert.NotNil(t, input.AuthorityDomains)
	assert.Nil(t, input.TrafficGrowth)
}

func TestParseScoreInputMalformed(t *testing.T) {
	_, err := ParseScoreInput([]byte(`{"client": `))
	assert.Error(t, err)
}

func TestLoadScoreInput(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleReport), 0o644))

		input, err := LoadScoreInput(path)
		require.NoError(t, err)
		assert.Equal(t, "acme-corp", input.Client)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScoreInput(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})
}
