package core

import (
	"fmt"
	"math"

	"github.com/seolens/seolens/schema"
)

// Authority-Links red-flag thresholds.
const (
	linkDeficitMonths   = 12  // engagement length before a deficit turns critical
	linkDeficitFraction = 0.3 // actual below this fraction of expected is a severe deficit
	noRecentLinksMonths = 6
	lowQualityFraction  = 0.7 // low-quality links beyond this share of the profile
	velocityDropRatio   = 0.3 // trailing 3-month average below this share of the prior average
)

// expectedLinks models how many authority links a given spend and duration
// should have produced.
func (p *Policy) expectedLinks(monthlySpend float64, investmentMonths int) int {
	return int(math.Round(monthlySpend / 1000 * p.cfg.LinksPerThousand * float64(investmentMonths)))
}

// ScoreAuthorityLinks scores backlink acquisition against the expected-links
// model: performance is actual over expected, capped at 100.
func (p *Policy) ScoreAuthorityLinks(input schema.AuthorityLinksInput) schema.ScoreResult {
	expected := p.expectedLinks(input.MonthlySpend, input.InvestmentMonths)

	var raw float64
	switch {
	case expected <= 0 && input.ActualLinks == 0:
		raw = 0
	case expected <= 0:
		// Spend too small for the model to expect a single link; any link
		// acquired counts as full delivery against a floor of one.
		expected = 1
		raw = clampScore(float64(input.ActualLinks) / float64(expected) * 100)
	default:
		raw = clampScore(float64(input.ActualLinks) / float64(expected) * 100)
	}

	flags := p.detectLinkFlags(input, expected)
	normalized := normalizeScore(raw)

	result := schema.ScoreResult{
		Score:           raw,
		NormalizedScore: normalized,
		AdjustedScore:   applyPenalties(normalized, flags),
		Details: map[schema.DetailKey]float64{
			schema.DetailExpectedLinks: float64(expected),
			schema.DetailActualLinks:   float64(input.ActualLinks),
		},
		Insights: linkInsights(input, expected, raw),
	}
	if input.InvestmentMonths > 0 {
		result.Details[schema.DetailMonthlyLinkRate] = float64(input.ActualLinks) / float64(input.InvestmentMonths)
	}
	if input.ActualLinks > 0 {
		result.Details[schema.DetailCostPerLink] = input.MonthlySpend * float64(input.InvestmentMonths) / float64(input.ActualLinks)
	}
	if len(flags) > 0 {
		result.RedFlags = flags
	}
	return result
}

// detectLinkFlags runs the per-scorer anomaly rules. Every rule is evaluated
// independently; all of them may fire together.
func (p *Policy) detectLinkFlags(input schema.AuthorityLinksInput, expected int) []schema.RedFlag {
	var flags []schema.RedFlag

	if input.InvestmentMonths >= linkDeficitMonths && float64(input.ActualLinks) < linkDeficitFraction*float64(expected) {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagSevereLinkDeficit,
			Severity: schema.SeverityCritical,
			Message: fmt.Sprintf("Only %d of %d expected links after %d months of investment",
				input.ActualLinks, expected, input.InvestmentMonths),
			ScorePenalty: -2,
		})
	}

	if input.InvestmentMonths >= noRecentLinksMonths && input.RecentLinks6Months != nil && *input.RecentLinks6Months == 0 {
		flags = append(flags, schema.RedFlag{
			Type:         schema.FlagNoRecentLinks,
			Severity:     schema.SeverityHigh,
			Message:      "No authority links acquired in the last 6 months",
			ScorePenalty: -1.5,
		})
	}

	if q := input.Quality; q != nil {
		total := q.HighQuality + q.MediumQuality + q.LowQuality
		if total > 0 && float64(q.LowQuality)/float64(total) > lowQualityFraction {
			flags = append(flags, schema.RedFlag{
				Type:     schema.FlagLowQualityLinks,
				Severity: schema.SeverityMedium,
				Message: fmt.Sprintf("%d of %d links are low quality; profile is vulnerable to algorithm updates",
					q.LowQuality, total),
				ScorePenalty: -1,
			})
		}
	}

	if trailing, preceding, ok := trailingVsPreceding(input.MonthlyGrowth); ok && preceding > 0 {
		if trailing < velocityDropRatio*preceding {
			flags = append(flags, schema.RedFlag{
				Type:     schema.FlagDecliningLinkVelocity,
				Severity: schema.SeverityHigh,
				Message: fmt.Sprintf("Link velocity collapsed: %.1f/month recently vs %.1f/month before",
					trailing, preceding),
				ScorePenalty: -1,
			})
		}
	}

	return flags
}

// linkInsights builds the ordered narrative for the links metric. Insights are
// generated independent of red flags.
func linkInsights(input schema.AuthorityLinksInput, expected int, raw float64) []string {
	var insights []string

	switch {
	case raw >= 80:
		insights = append(insights, fmt.Sprintf("Link building is on track: %d of %d expected authority links acquired", input.ActualLinks, expected))
	case raw >= 60:
		insights = append(insights, fmt.Sprintf("Link building is slightly behind: %d of %d expected authority links acquired", input.ActualLinks, expected))
	case raw >= 40:
		insights = append(insights, fmt.Sprintf("Link building is underdelivering: %d of %d expected authority links acquired", input.ActualLinks, expected))
	default:
		insights = append(insights, fmt.Sprintf("Link building is far below expectations: %d of %d expected authority links acquired", input.ActualLinks, expected))
	}

	if input.InvestmentMonths > 0 {
		actualRate := float64(input.ActualLinks) / float64(input.InvestmentMonths)
		expectedRate := float64(expected) / float64(input.InvestmentMonths)
		insights = append(insights, fmt.Sprintf("Current pace is %.1f links/month against an expected %.1f links/month", actualRate, expectedRate))
	}

	if input.ActualLinks > 0 {
		costPerLink := input.MonthlySpend * float64(input.InvestmentMonths) / float64(input.ActualLinks)
		insights = append(insights, fmt.Sprintf("Effective cost per authority link is $%.0f", costPerLink))
	}

	if q := input.Quality; q != nil {
		total := q.HighQuality + q.MediumQuality + q.LowQuality
		if total > 0 {
			highShare := float64(q.HighQuality) / float64(total) * 100
			insights = append(insights, fmt.Sprintf("Quality mix: %.0f%% high, %.0f%% medium, %.0f%% low",
				highShare,
				float64(q.MediumQuality)/float64(total)*100,
				float64(q.LowQuality)/float64(total)*100))
		}
	}

	return insights
}
