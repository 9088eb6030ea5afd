package core

import (
	"fmt"

	"github.com/seolens/seolens/schema"
)

// Ranking-Improvements thresholds.
const (
	unrankedPosition    = 100  // positions beyond this count as unranked
	poorRankingMonths   = 12   // engagement length before poor top-10 coverage is critical
	poorTop10Fraction   = 0.1  // top-10 share below this is poor
	commercialMonths    = 8    // engagement length before missing commercial rankings flags
	declineFraction     = 0.3  // share of formerly top-20 keywords regressing
	maxPositionValue    = 10.0 // value of a top-3 position
	neutralPercentValue = 50.0 // percentage when no improvement headroom exists
)

// positionValue assigns the tiered worth of a search position.
// Unranked positions (beyond 100) are worth nothing.
func positionValue(position int) float64 {
	switch {
	case position <= 0 || position > unrankedPosition:
		return 0
	case position <= 3:
		return 10
	case position <= 5:
		return 8
	case position <= 10:
		return 6
	case position <= 20:
		return 3
	default:
		return 1
	}
}

// ScoreRankingImprovements scores keyword movement by position value gained
// against the total possible gain.
func (p *Policy) ScoreRankingImprovements(input schema.RankingImprovementsInput) schema.ScoreResult {
	var totalValue, totalPossible float64
	var top3, top10, top20, newRankings int

	for _, c := range input.Changes {
		oldValue := positionValue(c.OldPosition)
		totalValue += positionValue(c.NewPosition) - oldValue
		totalPossible += maxPositionValue - oldValue

		if c.NewPosition > 0 && c.NewPosition <= 3 {
			top3++
		}
		if c.NewPosition > 0 && c.NewPosition <= 10 {
			top10++
		}
		if c.NewPosition > 0 && c.NewPosition <= 20 {
			top20++
		}
		if c.OldPosition > unrankedPosition && c.NewPosition > 0 && c.NewPosition <= unrankedPosition {
			newRankings++
		}
	}

	var percent float64
	switch {
	case len(input.Changes) == 0:
		percent = 0
	case totalPossible == 0:
		// Every tracked keyword already sat at maximum value; holding
		// position is neither progress nor regression.
		percent = neutralPercentValue
	default:
		percent = totalValue / totalPossible * 100
	}

	raw := clampScore(percent)
	flags := detectRankingFlags(input, top10)
	normalized := normalizeScore(raw)

	result := schema.ScoreResult{
		Score:           raw,
		NormalizedScore: normalized,
		AdjustedScore:   applyPenalties(normalized, flags),
		Details: map[schema.DetailKey]float64{
			schema.DetailTotalValue:    totalValue,
			schema.DetailPossibleValue: totalPossible,
			schema.DetailTop3Count:     float64(top3),
			schema.DetailTop10Count:    float64(top10),
			schema.DetailTop20Count:    float64(top20),
			schema.DetailNewRankings:   float64(newRankings),
		},
		Insights: rankingInsights(input, percent, top3, top10, newRankings),
	}
	if len(flags) > 0 {
		result.RedFlags = flags
	}
	return result
}

func detectRankingFlags(input schema.RankingImprovementsInput, top10 int) []schema.RedFlag {
	var flags []schema.RedFlag
	total := len(input.Changes)

	if input.InvestmentMonths >= poorRankingMonths && total > 0 &&
		float64(top10)/float64(total) < poorTop10Fraction {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagPoorRankingPerformance,
			Severity: schema.SeverityCritical,
			Message: fmt.Sprintf("Only %d of %d tracked keywords rank top-10 after %d months",
				top10, total, input.InvestmentMonths),
			ScorePenalty: -2,
		})
	}

	var commercialTotal, commercialTop10 int
	for _, c := range input.Changes {
		if !c.Commercial {
			continue
		}
		commercialTotal++
		if c.NewPosition > 0 && c.NewPosition <= 10 {
			commercialTop10++
		}
	}
	if commercialTotal > 0 && commercialTop10 == 0 && input.InvestmentMonths >= commercialMonths {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagNoCommercialRankings,
			Severity: schema.SeverityHigh,
			Message: fmt.Sprintf("None of the %d commercial keywords rank top-10; the rankings that exist do not convert",
				commercialTotal),
			ScorePenalty: -1.5,
		})
	}

	var wasTop20, regressed int
	for _, c := range input.Changes {
		if c.OldPosition <= 0 || c.OldPosition > 20 {
			continue
		}
		wasTop20++
		if c.NewPosition > c.OldPosition || c.NewPosition <= 0 {
			regressed++
		}
	}
	if wasTop20 > 0 && float64(regressed)/float64(wasTop20) > declineFraction {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagWidespreadDeclines,
			Severity: schema.SeverityHigh,
			Message: fmt.Sprintf("%d of %d previously top-20 keywords lost ground",
				regressed, wasTop20),
			ScorePenalty: -1.5,
		})
	}

	return flags
}

func rankingInsights(input schema.RankingImprovementsInput, percent float64, top3, top10, newRankings int) []string {
	var insights []string

	if len(input.Changes) == 0 {
		insights = append(insights, "No keyword movement tracked for this engagement")
		return insights
	}

	switch {
	case percent >= 80:
		insights = append(insights, fmt.Sprintf("Rankings captured %.0f%% of the possible improvement across %d keywords", percent, len(input.Changes)))
	case percent >= 40:
		insights = append(insights, fmt.Sprintf("Rankings captured %.0f%% of the possible improvement; meaningful headroom remains", percent))
	default:
		insights = append(insights, fmt.Sprintf("Rankings captured only %.0f%% of the possible improvement", percent))
	}

	insights = append(insights, fmt.Sprintf("%d keywords rank top-3 and %d rank top-10", top3, top10))
	if newRankings > 0 {
		insights = append(insights, fmt.Sprintf("%d previously unranked keywords entered the top 100", newRankings))
	}

	return insights
}
