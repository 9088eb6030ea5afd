package core

import (
	"testing"

	"github.com/seolens/seolens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPositionValue pins the tiered position worth table.
func TestPositionValue(t *testing.T) {
	tests := []struct {
		name     string
		position int
		expected float64
	}{
		{"first", 1, 10},
		{"third", 3, 10},
		{"fourth", 4, 8},
		{"fifth", 5, 8},
		{"tenth", 10, 6},
		{"fifteenth", 15, 3},
		{"twentieth", 20, 3},
		{"fiftieth", 50, 1},
		{"hundredth", 100, 1},
		{"unranked", 101, 0},
		{"zero means unranked", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, positionValue(tt.position), 0.001)
		})
	}
}

// TestScoreRankingImprovements covers the position-value model.
func TestScoreRankingImprovements(t *testing.T) {
	p := NewDefaultPolicy()

	t.Run("three keyword set matches manual computation", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 12,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 15, NewPosition: 4},   // value 8-3=5, possible 7
				{Keyword: "b", OldPosition: 8, NewPosition: 2},    // value 10-6=4, possible 4
				{Keyword: "c", OldPosition: 102, NewPosition: 25}, // value 1-0=1, possible 10
			},
		})
		// total 10 of possible 21 = 47.6%.
		assert.InDelta(t, 47.619, result.Score, 0.01)
		assert.Equal(t, 5, result.NormalizedScore)
		assert.InDelta(t, 1.0, result.Details[schema.DetailTop3Count], 0.001)
		assert.InDelta(t, 2.0, result.Details[schema.DetailTop10Count], 0.001)
		assert.InDelta(t, 1.0, result.Details[schema.DetailNewRankings], 0.001)
	})

	t.Run("no changes scores zero", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{InvestmentMonths: 12})
		assert.InDelta(t, 0.0, result.Score, 0.001)
		assert.Equal(t, 1, result.NormalizedScore)
	})

	t.Run("no headroom is neutral", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 12,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 1, NewPosition: 1},
				{Keyword: "b", OldPosition: 2, NewPosition: 3},
			},
		})
		assert.InDelta(t, 50.0, result.Score, 0.001)
		assert.Equal(t, 6, result.NormalizedScore)
	})

	t.Run("declines clamp to the raw floor", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 12,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 2, NewPosition: 50, Commercial: false},
			},
		})
		assert.InDelta(t, 0.0, result.Score, 0.001)
		assert.Equal(t, 1, result.NormalizedScore)
	})
}

// TestDetectRankingFlags exercises the ranking anomaly rules.
func TestDetectRankingFlags(t *testing.T) {
	p := NewDefaultPolicy()

	flagTypes := func(flags []schema.RedFlag) []schema.FlagType {
		types := make([]schema.FlagType, len(flags))
		for i, f := range flags {
			types[i] = f.Type
		}
		return types
	}

	t.Run("poor top-10 coverage after a year", func(t *testing.T) {
		changes := make([]schema.RankingChange, 0, 20)
		for range 20 {
			changes = append(changes, schema.RankingChange{OldPosition: 60, NewPosition: 45})
		}
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 12, Changes: changes,
		})
		assert.Contains(t, flagTypes(result.RedFlags), schema.FlagPoorRankingPerformance)
	})

	t.Run("no commercial rankings", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 9,
			Changes: []schema.RankingChange{
				{Keyword: "buy x", OldPosition: 40, NewPosition: 25, Commercial: true},
				{Keyword: "what is x", OldPosition: 12, NewPosition: 3},
			},
		})
		assert.Contains(t, flagTypes(result.RedFlags), schema.FlagNoCommercialRankings)
	})

	t.Run("commercial keyword in top ten clears the flag", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 9,
			Changes: []schema.RankingChange{
				{Keyword: "buy x", OldPosition: 40, NewPosition: 8, Commercial: true},
			},
		})
		assert.NotContains(t, flagTypes(result.RedFlags), schema.FlagNoCommercialRankings)
	})

	t.Run("widespread declines among former top-20", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 6,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 5, NewPosition: 30},
				{Keyword: "b", OldPosition: 10, NewPosition: 40},
				{Keyword: "c", OldPosition: 15, NewPosition: 12},
				{Keyword: "d", OldPosition: 18, NewPosition: 9},
			},
		})
		// 2 of 4 formerly top-20 keywords regressed.
		require.Contains(t, flagTypes(result.RedFlags), schema.FlagWidespreadDeclines)
	})

	t.Run("stable top-20 not flagged", func(t *testing.T) {
		result := p.ScoreRankingImprovements(schema.RankingImprovementsInput{
			InvestmentMonths: 6,
			Changes: []schema.RankingChange{
				{Keyword: "a", OldPosition: 5, NewPosition: 4},
				{Keyword: "b", OldPosition: 10, NewPosition: 8},
				{Keyword: "c", OldPosition: 15, NewPosition: 12},
				{Keyword: "d", OldPosition: 18, NewPosition: 25},
			},
		})
		// 1 of 4 regressed, below the 30% threshold.
		assert.NotContains(t, flagTypes(result.RedFlags), schema.FlagWidespreadDeclines)
	})
}
