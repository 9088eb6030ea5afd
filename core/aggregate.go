package core

import (
	"fmt"

	"github.com/seolens/seolens/schema"
)

// aggregate combines the five metric results into one overall score, runs the
// cross-metric ROI detectors and generates the ordered recommendations.
func (p *Policy) aggregate(input schema.ScoreInput, breakdown schema.ScoreBreakdown) schema.OverallScoreData {
	w := p.cfg.Weights

	// Weights apply to the raw 0-100 scores, not the 1-10 buckets.
	weighted := breakdown.AuthorityLinks.Score*w.AuthorityLinks +
		breakdown.AuthorityDomains.Score*w.AuthorityDomains +
		breakdown.TrafficGrowth.Score*w.TrafficGrowth +
		breakdown.Rankings.Score*w.Rankings +
		breakdown.AIVisibility.Score*w.AIVisibility

	flags := collectFlags(breakdown)
	flags = append(flags, p.detectROIFlags(input, breakdown)...)

	return schema.OverallScoreData{
		Client:           input.Client,
		WeightedScore:    weighted,
		NormalizedScore:  normalizeScore(weighted),
		PerformanceLevel: schema.PerformanceLevelFor(weighted),
		Breakdown:        breakdown,
		Recommendations:  p.recommendations(weighted, breakdown),
		RedFlags:         flags,
		Confidence:       schema.ConfidenceFor(input.AuthorityLinks.InvestmentMonths),
	}
}

// collectFlags flattens the per-metric red flags in canonical metric order.
func collectFlags(breakdown schema.ScoreBreakdown) []schema.RedFlag {
	var flags []schema.RedFlag
	for _, r := range breakdownResults(breakdown) {
		flags = append(flags, r.result.RedFlags...)
	}
	return flags
}

// meanNormalized averages the five normalized scores.
func meanNormalized(breakdown schema.ScoreBreakdown) float64 {
	results := breakdownResults(breakdown)
	var sum float64
	for _, r := range results {
		sum += float64(r.result.NormalizedScore)
	}
	return sum / float64(len(results))
}

// detectROIFlags runs the cross-metric anomaly rules. These need the full
// input set, so only the full aggregation evaluates them.
func (p *Policy) detectROIFlags(input schema.ScoreInput, breakdown schema.ScoreBreakdown) []schema.RedFlag {
	var flags []schema.RedFlag
	meanScore := meanNormalized(breakdown)
	spend := input.AuthorityLinks.MonthlySpend
	months := input.AuthorityLinks.InvestmentMonths

	if spend >= p.cfg.HighSpendThreshold && meanScore < p.cfg.HighSpendScoreFloor {
		totalSpend := spend * float64(months)
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagHighSpendPoorResults,
			Severity: schema.SeverityCritical,
			Message: fmt.Sprintf("$%.0f/month is buying a %.1f/10 average result; the spend is not converting",
				spend, meanScore),
			ScorePenalty:  p.cfg.CrossMetricPenalty,
			MissedRevenue: &totalSpend,
		})
	}

	if months >= p.cfg.LongTermMonths && meanScore < p.cfg.LongTermScoreFloor {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagLongTermUnderperformance,
			Severity: schema.SeverityCritical,
			Message: fmt.Sprintf("After %d months the average result is still %.1f/10; the strategy is not working",
				months, meanScore),
			ScorePenalty: p.cfg.CrossMetricPenalty,
		})
	}

	return flags
}

// namedResult pairs a metric name with its score result for ordered iteration.
type namedResult struct {
	name   schema.MetricName
	result schema.ScoreResult
}

// breakdownResults lists the five results in canonical metric order.
func breakdownResults(breakdown schema.ScoreBreakdown) []namedResult {
	return []namedResult{
		{schema.MetricAuthorityLinks, breakdown.AuthorityLinks},
		{schema.MetricAuthorityDomains, breakdown.AuthorityDomains},
		{schema.MetricTrafficGrowth, breakdown.TrafficGrowth},
		{schema.MetricRankings, breakdown.Rankings},
		{schema.MetricAIVisibility, breakdown.AIVisibility},
	}
}
