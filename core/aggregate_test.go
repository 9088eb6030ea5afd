package core

import (
	"strings"
	"testing"

	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthyInput returns a full input set that scores well and raises no flags.
func healthyInput() schema.ScoreInput {
	return schema.ScoreInput{
		Client: "acme.com",
		AuthorityLinks: &schema.AuthorityLinksInput{
			ActualLinks: 60, MonthlySpend: 3000, InvestmentMonths: 12,
		},
		AuthorityDomains: &schema.AuthorityDomainsInput{
			ClientDomains: 65, CompetitorDomains: []int{78, 92, 65},
		},
		TrafficGrowth: &schema.TrafficGrowthInput{
			GrowthPercent: 30, CompetitorGrowth: []float64{20}, InvestmentMonths: 12,
		},
		RankingImprovements: &schema.RankingImprovementsInput{
			InvestmentMonths: 12,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 15, NewPosition: 2},
				{Keyword: "b", OldPosition: 30, NewPosition: 4},
				{Keyword: "c", OldPosition: 50, NewPosition: 9},
			},
		},
		AIVisibility: &schema.AIVisibilityInput{
			InvestmentMonths: 12,
			Keywords: []schema.AIKeywordResult{
				{Keyword: "a", MentionPosition: 2},
				{Keyword: "b", MentionPosition: 4},
				{Keyword: "c", MentionPosition: 8},
			},
		},
	}
}

// TestWeightClosure guards the aggregation weights summing to exactly 1.0.
func TestWeightClosure(t *testing.T) {
	w := DefaultConfig().Weights
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

// TestScoreFullPipeline runs the whole pipeline on a healthy engagement.
func TestScoreFullPipeline(t *testing.T) {
	p := NewDefaultPolicy()

	overall, err := p.Score(healthyInput())
	require.NoError(t, err)

	assert.Equal(t, "acme.com", overall.Client)
	assert.GreaterOrEqual(t, overall.NormalizedScore, 1)
	assert.LessOrEqual(t, overall.NormalizedScore, 10)
	assert.Equal(t, schema.ConfidenceHigh, overall.Confidence)
	assert.NotEmpty(t, overall.Recommendations)

	// Weighted score must equal the hand-computed weighted sum of raw scores.
	b := overall.Breakdown
	expected := b.AuthorityLinks.Score*0.35 + b.AuthorityDomains.Score*0.20 +
		b.TrafficGrowth.Score*0.20 + b.Rankings.Score*0.15 + b.AIVisibility.Score*0.10
	assert.InDelta(t, expected, overall.WeightedScore, 1e-9)
	assert.Equal(t, schema.PerformanceLevelFor(overall.WeightedScore), overall.PerformanceLevel)
}

// TestScoreDeterminism ensures identical inputs produce identical output.
func TestScoreDeterminism(t *testing.T) {
	p := NewDefaultPolicy()

	first, err := p.Score(healthyInput())
	require.NoError(t, err)
	second, err := p.Score(healthyInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestScoreMissingSections rejects incomplete input before scoring.
func TestScoreMissingSections(t *testing.T) {
	p := NewDefaultPolicy()

	input := healthyInput()
	input.TrafficGrowth = nil
	input.AIVisibility = nil

	_, err := p.Score(input)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Len(t, malformed.Fields, 2)
}

// TestScoreMissingSpend treats an absent spend as malformed, not zero.
func TestScoreMissingSpend(t *testing.T) {
	p := NewDefaultPolicy()

	input := healthyInput()
	input.AuthorityLinks.MonthlySpend = 0

	_, err := p.Score(input)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Fields[0], "monthlySpend")
}

// TestDetectROIFlags exercises the cross-metric anomaly rules.
func TestDetectROIFlags(t *testing.T) {
	p := NewDefaultPolicy()

	// Poor results across the board on a big budget, long engagement.
	input := schema.ScoreInput{
		AuthorityLinks: &schema.AuthorityLinksInput{
			ActualLinks: 5, MonthlySpend: 6000, InvestmentMonths: 20,
		},
		AuthorityDomains: &schema.AuthorityDomainsInput{
			ClientDomains: 10, CompetitorDomains: []int{100, 120},
		},
		TrafficGrowth: &schema.TrafficGrowthInput{
			GrowthPercent: -5, CompetitorGrowth: []float64{25}, InvestmentMonths: 20,
		},
		RankingImprovements: &schema.RankingImprovementsInput{
			InvestmentMonths: 20,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 50, NewPosition: 60},
				{Keyword: "b", OldPosition: 40, NewPosition: 45},
			},
		},
		AIVisibility: &schema.AIVisibilityInput{
			InvestmentMonths: 20,
			Keywords:         []schema.AIKeywordResult{{Keyword: "a"}, {Keyword: "b"}},
		},
	}

	overall, err := p.Score(input)
	require.NoError(t, err)

	var types []schema.FlagType
	for _, f := range overall.RedFlags {
		types = append(types, f.Type)
	}
	assert.Contains(t, types, schema.FlagHighSpendPoorResults)
	assert.Contains(t, types, schema.FlagLongTermUnderperformance)

	// The high-spend flag carries the total spend as missed revenue.
	for _, f := range overall.RedFlags {
		if f.Type == schema.FlagHighSpendPoorResults {
			require.NotNil(t, f.MissedRevenue)
			assert.InDelta(t, 120000.0, *f.MissedRevenue, 0.001)
		}
	}
}

// TestRecommendationOrder pins the deterministic recommendation layout.
func TestRecommendationOrder(t *testing.T) {
	p := NewDefaultPolicy()

	overall, err := p.Score(healthyInput())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(overall.Recommendations), 3)

	// Headline first, then the two weakest components by name.
	assert.Contains(t, overall.Recommendations[0], "Performance is")
	assert.Contains(t, overall.Recommendations[1], "Focus on")
	assert.Contains(t, overall.Recommendations[2], "Focus on")
}

// TestQuickWins triggers the targeted score-pair advice.
func TestQuickWins(t *testing.T) {
	p := NewDefaultPolicy()

	input := healthyInput()
	// Healthy traffic, invisible in AI answers.
	input.AIVisibility.Keywords = []schema.AIKeywordResult{{Keyword: "a"}, {Keyword: "b"}}

	overall, err := p.Score(input)
	require.NoError(t, err)

	var found bool
	for _, r := range overall.Recommendations {
		if strings.HasPrefix(r, "Quick win") {
			found = true
		}
	}
	assert.True(t, found, "expected an AI quick-win recommendation")
}

// BenchmarkScore benchmarks the full pipeline on a representative input.
func BenchmarkScore(b *testing.B) {
	p := NewDefaultPolicy()
	input := healthyInput()

	for b.Loop() {
		_, _ = p.Score(input)
	}
}

// TestPerformanceLevels pins the tier bucket over the weighted score.
func TestPerformanceLevels(t *testing.T) {
	tests := []struct {
		score    float64
		expected schema.PerformanceLevel
	}{
		{85, schema.LevelExcellent},
		{80, schema.LevelExcellent},
		{65, schema.LevelGood},
		{45, schema.LevelAverage},
		{25, schema.LevelPoor},
		{5, schema.LevelVeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, schema.PerformanceLevelFor(tt.score), "score=%.0f", tt.score)
	}
}
