package core

import (
	"fmt"
	"sort"

	"github.com/seolens/seolens/schema"
)

// Quick-win score thresholds on the raw 0-100 scale.
const (
	weakScoreCeiling  = 40.0
	healthyScoreFloor = 60.0
)

// recommendations generates the ordered, deterministic advice list:
// tier headline, two weakest components, the potential-improvement estimate,
// then targeted quick wins.
func (p *Policy) recommendations(weighted float64, breakdown schema.ScoreBreakdown) []string {
	recs := []string{tierHeadline(schema.PerformanceLevelFor(weighted))}

	results := breakdownResults(breakdown)
	weakest := weakestTwo(results)

	for _, r := range weakest {
		recs = append(recs, fmt.Sprintf("Focus on %s: currently scoring %.1f/100",
			schema.MetricDisplayName[r.name], r.result.Score))
	}

	if improved := p.potentialImprovement(weighted, results, weakest); improved > weighted {
		recs = append(recs, fmt.Sprintf("Bringing the two weakest areas up to average could lift the overall score from %.1f to %.1f",
			weighted, improved))
	}

	recs = append(recs, quickWins(breakdown)...)

	return recs
}

// tierHeadline returns the tier-specific opening message.
func tierHeadline(level schema.PerformanceLevel) string {
	switch level {
	case schema.LevelExcellent:
		return "Performance is excellent; protect the gains and keep the current strategy running"
	case schema.LevelGood:
		return "Performance is good; targeted fixes in the weakest areas will compound the results"
	case schema.LevelAverage:
		return "Performance is average; the investment is working but leaving results on the table"
	case schema.LevelPoor:
		return "Performance is poor; the strategy needs a significant course correction"
	default:
		return "Performance is very poor; a fundamental strategy review is overdue"
	}
}

// weakestTwo returns the two lowest-scoring components by raw score.
// Ties break on canonical metric order so output stays deterministic.
func weakestTwo(results []namedResult) []namedResult {
	sorted := make([]namedResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].result.Score < sorted[j].result.Score
	})
	return sorted[:2]
}

// potentialImprovement estimates the overall score if the two weakest
// components were raised to the average of all five, re-weighted.
func (p *Policy) potentialImprovement(weighted float64, results, weakest []namedResult) float64 {
	var avg float64
	for _, r := range results {
		avg += r.result.Score
	}
	avg /= float64(len(results))

	improved := weighted
	for _, w := range weakest {
		if avg > w.result.Score {
			improved += (avg - w.result.Score) * p.cfg.Weights.Of(w.name)
		}
	}
	return improved
}

// quickWins emits targeted messages for specific score-pair patterns where a
// strong metric can be leveraged to fix a weak one.
func quickWins(breakdown schema.ScoreBreakdown) []string {
	var wins []string

	if breakdown.AIVisibility.Score < weakScoreCeiling && breakdown.TrafficGrowth.Score >= healthyScoreFloor {
		wins = append(wins, "Quick win: traffic is healthy but AI assistants ignore the brand; optimize existing content for AI-assistant retrieval")
	}
	if breakdown.Rankings.Score < weakScoreCeiling && breakdown.AuthorityLinks.Score >= healthyScoreFloor {
		wins = append(wins, "Quick win: link authority is strong but rankings lag; point the existing authority at the priority keyword pages")
	}

	return wins
}
