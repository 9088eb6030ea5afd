package core

import (
	"fmt"

	"github.com/seolens/seolens/schema"
)

// Authority-Domains red-flag thresholds.
const (
	authorityGapPercent   = 30.0 // below this share of the competitor average is a massive gap
	behindAllFraction     = 0.5  // below this share of every single competitor
	neutralDomainsPercent = 50.0 // assumed parity when no competitor benchmark exists
)

// domainBucket converts the competitive percentage to the 1-10 scale.
// This metric deliberately uses a coarser table than the shared normalizer;
// the two tables are intentionally distinct.
func domainBucket(percent float64) int {
	switch {
	case percent >= 80:
		return 10
	case percent >= 60:
		return 8
	case percent >= 40:
		return 6
	case percent >= 20:
		return 4
	default:
		return 2
	}
}

// ScoreAuthorityDomains scores referring domains against the competitor
// average. With no competitor data the metric reports neutral parity rather
// than failing; missing benchmarks are an edge case, not an error.
func (p *Policy) ScoreAuthorityDomains(input schema.AuthorityDomainsInput) schema.ScoreResult {
	avgCompetitor := meanInts(input.CompetitorDomains)

	var percent float64
	if avgCompetitor > 0 {
		percent = float64(input.ClientDomains) / avgCompetitor * 100
	} else {
		percent = neutralDomainsPercent
	}

	flags := detectDomainFlags(input, percent)
	normalized := domainBucket(percent)

	result := schema.ScoreResult{
		Score:           clampScore(percent),
		NormalizedScore: normalized,
		AdjustedScore:   applyPenalties(normalized, flags),
		Details: map[schema.DetailKey]float64{
			schema.DetailClientDomains: float64(input.ClientDomains),
			schema.DetailAvgCompetitor: avgCompetitor,
			schema.DetailDomainPercent: percent,
		},
		Insights: domainInsights(input, avgCompetitor, percent),
	}
	if len(flags) > 0 {
		result.RedFlags = flags
	}
	return result
}

func detectDomainFlags(input schema.AuthorityDomainsInput, percent float64) []schema.RedFlag {
	var flags []schema.RedFlag

	if percent < authorityGapPercent {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagMassiveAuthorityGap,
			Severity: schema.SeverityCritical,
			Message: fmt.Sprintf("Referring domains are at %.0f%% of the competitor average; the authority gap is widening",
				percent),
			ScorePenalty: -2,
		})
	}

	if trailing, preceding, ok := trailingVsPreceding(input.GrowthTrend); ok {
		if trailing <= preceding {
			flags = append(flags, schema.RedFlag{
				Type:     schema.FlagStagnantDomainGrowth,
				Severity: schema.SeverityHigh,
				Message: fmt.Sprintf("Domain growth has stalled: averaging %.1f recently vs %.1f before",
					trailing, preceding),
				ScorePenalty: -1.5,
			})
		}
	}

	if len(input.CompetitorDomains) > 0 {
		behindAll := true
		for _, c := range input.CompetitorDomains {
			if float64(input.ClientDomains) >= behindAllFraction*float64(c) {
				behindAll = false
				break
			}
		}
		if behindAll {
			flags = append(flags, schema.RedFlag{
				Type:         schema.FlagBehindAllCompetitors,
				Severity:     schema.SeverityHigh,
				Message:      "Client has less than half the referring domains of every tracked competitor",
				ScorePenalty: -1,
			})
		}
	}

	return flags
}

func domainInsights(input schema.AuthorityDomainsInput, avgCompetitor, percent float64) []string {
	var insights []string

	if avgCompetitor <= 0 {
		insights = append(insights,
			fmt.Sprintf("%d referring domains tracked; no competitor benchmark supplied, assuming parity", input.ClientDomains))
		return insights
	}

	switch {
	case percent >= 80:
		insights = append(insights, fmt.Sprintf("Domain authority is competitive: %d referring domains vs a competitor average of %.0f", input.ClientDomains, avgCompetitor))
	case percent >= 40:
		insights = append(insights, fmt.Sprintf("Domain authority trails the market: %d referring domains vs a competitor average of %.0f", input.ClientDomains, avgCompetitor))
	default:
		insights = append(insights, fmt.Sprintf("Domain authority is far behind: %d referring domains vs a competitor average of %.0f", input.ClientDomains, avgCompetitor))
	}

	if gap := avgCompetitor - float64(input.ClientDomains); gap > 0 {
		insights = append(insights, fmt.Sprintf("Closing the gap requires roughly %.0f additional referring domains", gap))
	}

	return insights
}
