package core

import (
	"fmt"
	"math"

	"github.com/seolens/seolens/schema"
)

// Traffic-Growth thresholds.
const (
	stagnantGrowthCeiling   = 1.0  // growth at or below this percent counts as stagnant
	stagnantMonths          = 6    // minimum engagement length before stagnation flags
	stagnantCriticalMonths  = 12   // stagnation after this long escalates to critical
	materialCompetitorGrown = 10.0 // competitor growth considered materially positive
	concentrationThreshold  = 0.7  // top-keyword traffic share considered risky
	parityScore             = 50.0 // raw score at competitor parity
	noBenchmarkBase         = 50.0 // raw base when growth is positive but no benchmark exists
	zeroGrowthScore         = 10.0 // raw score at exactly zero growth, and the floor for any positive growth
)

// ScoreTrafficGrowth annualizes the client's growth and scores it relative to
// the competitor average. The score rises monotonically above parity and
// drops sharply for zero or negative growth.
func (p *Policy) ScoreTrafficGrowth(input schema.TrafficGrowthInput) schema.ScoreResult {
	annualized := annualizeGrowth(input.GrowthPercent, input.InvestmentMonths)
	avgCompetitor := mean(input.CompetitorGrowth)

	var raw float64
	var relative float64
	switch {
	case annualized <= 0:
		// Zero or shrinking traffic scores near the floor regardless of the
		// competitive picture.
		raw = clampScore(zeroGrowthScore + annualized/2)
	case avgCompetitor <= 0:
		raw = clampScore(noBenchmarkBase + annualized)
	default:
		relative = annualized / avgCompetitor
		// Floored at the zero-growth score so marginal positive growth
		// never ranks below flat traffic.
		raw = clampScore(math.Max(parityScore*relative, zeroGrowthScore))
	}

	flags := detectTrafficFlags(input, avgCompetitor)
	normalized := normalizeScore(raw)

	result := schema.ScoreResult{
		Score:           raw,
		NormalizedScore: normalized,
		AdjustedScore:   applyPenalties(normalized, flags),
		Details: map[schema.DetailKey]float64{
			schema.DetailAnnualizedGrowth: annualized,
			schema.DetailCompetitorGrowth: avgCompetitor,
		},
		Insights: trafficInsights(input, annualized, avgCompetitor),
	}
	if relative > 0 {
		result.Details[schema.DetailRelativePerformance] = relative
	}
	if len(flags) > 0 {
		result.RedFlags = flags
	}
	return result
}

// annualizeGrowth projects the stated growth onto a 12-month window so
// engagements of different lengths compare on the same footing.
func annualizeGrowth(growthPercent float64, investmentMonths int) float64 {
	if investmentMonths <= 0 {
		return growthPercent
	}
	return growthPercent / float64(investmentMonths) * 12
}

func detectTrafficFlags(input schema.TrafficGrowthInput, avgCompetitor float64) []schema.RedFlag {
	var flags []schema.RedFlag

	if input.GrowthPercent <= stagnantGrowthCeiling &&
		input.InvestmentMonths >= stagnantMonths &&
		avgCompetitor >= materialCompetitorGrown {
		severity := schema.SeverityHigh
		penalty := -1.5
		if input.InvestmentMonths >= stagnantCriticalMonths {
			severity = schema.SeverityCritical
			penalty = -2
		}
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagStagnantProgress,
			Severity: severity,
			Message: fmt.Sprintf("Traffic is flat (%.1f%%) after %d months while competitors grew %.0f%% on average",
				input.GrowthPercent, input.InvestmentMonths, avgCompetitor),
			ScorePenalty: penalty,
		})
	}

	if input.TopKeywordsDependency > concentrationThreshold {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagKeywordConcentration,
			Severity: schema.SeverityMedium,
			Message: fmt.Sprintf("%.0f%% of traffic rides on a handful of keywords; a single ranking loss could erase the growth",
				input.TopKeywordsDependency*100),
			ScorePenalty: -1,
		})
	}

	return flags
}

func trafficInsights(input schema.TrafficGrowthInput, annualized, avgCompetitor float64) []string {
	var insights []string

	switch {
	case annualized <= 0:
		insights = append(insights, fmt.Sprintf("Organic traffic is not growing (%.1f%% annualized)", annualized))
	case avgCompetitor <= 0:
		insights = append(insights, fmt.Sprintf("Organic traffic grew %.1f%% annualized; no competitor benchmark supplied", annualized))
	case annualized >= avgCompetitor:
		insights = append(insights, fmt.Sprintf("Organic traffic grew %.1f%% annualized, ahead of the %.1f%% competitor average", annualized, avgCompetitor))
	default:
		insights = append(insights, fmt.Sprintf("Organic traffic grew %.1f%% annualized, behind the %.1f%% competitor average", annualized, avgCompetitor))
	}

	if avgCompetitor > 0 && annualized > 0 {
		ratio := annualized / avgCompetitor
		insights = append(insights, fmt.Sprintf("Relative performance is %.0f%% of market pace", math.Round(ratio*100)))
	}

	if input.TopKeywordsDependency > 0 {
		insights = append(insights, fmt.Sprintf("%.0f%% of organic traffic comes from the top keywords", input.TopKeywordsDependency*100))
	}

	return insights
}
