package core

import (
	"fmt"

	"github.com/seolens/seolens/schema"
)

// AI-Visibility point tiers and thresholds.
const (
	aiPointsTop5       = 20.0 // mentioned in the assistant's top 5
	aiPointsTop10      = 15.0 // mentioned in the top 10
	aiPointsFollowUp   = 10.0 // mentioned only after a clarifying follow-up
	aiPointsRecognized = 5.0  // brand recognized but not recommended
	aiMaxPoints        = 20.0 // best possible points per keyword

	aiInvisibilityMonths  = 6
	aiInvisibilityPercent = 20.0
	noPresenceMonths      = 8
)

// keywordPoints scores one keyword's AI-assistant exposure on the tiered scale.
func keywordPoints(k schema.AIKeywordResult) float64 {
	switch {
	case k.MentionPosition > 0 && k.MentionPosition <= 5:
		return aiPointsTop5
	case k.MentionPosition > 0 && k.MentionPosition <= 10:
		return aiPointsTop10
	case k.AfterFollowUp:
		return aiPointsFollowUp
	case k.MentionPosition > 0 || k.BrandRecognized:
		// A mention buried past the top 10 is worth the same as bare
		// brand recognition.
		return aiPointsRecognized
	default:
		return 0
	}
}

// ScoreAIVisibility scores how visible the brand is inside AI-assistant
// answers for the tracked keyword set.
func (p *Policy) ScoreAIVisibility(input schema.AIVisibilityInput) schema.ScoreResult {
	var points float64
	var mentioned int
	for _, k := range input.Keywords {
		points += keywordPoints(k)
		if k.MentionPosition > 0 || k.AfterFollowUp {
			mentioned++
		}
	}

	possible := aiMaxPoints * float64(len(input.Keywords))
	var percent float64
	if possible > 0 {
		percent = points / possible * 100
	}

	raw := clampScore(percent)
	flags := detectAIFlags(input, percent, mentioned)
	normalized := normalizeScore(raw)

	result := schema.ScoreResult{
		Score:           raw,
		NormalizedScore: normalized,
		AdjustedScore:   applyPenalties(normalized, flags),
		Details: map[schema.DetailKey]float64{
			schema.DetailAIPoints:         points,
			schema.DetailAIPossiblePoints: possible,
			schema.DetailAIMentioned:      float64(mentioned),
		},
		Insights: aiInsights(input, percent, mentioned),
	}
	if len(flags) > 0 {
		result.RedFlags = flags
	}
	return result
}

func detectAIFlags(input schema.AIVisibilityInput, percent float64, mentioned int) []schema.RedFlag {
	var flags []schema.RedFlag

	if input.InvestmentMonths >= aiInvisibilityMonths && percent < aiInvisibilityPercent {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagAIInvisibility,
			Severity: schema.SeverityMedium,
			Message: fmt.Sprintf("AI assistants surface the brand for only %.0f%% of the possible exposure",
				percent),
			ScorePenalty: -1,
		})
	}

	if mentioned == 0 && len(input.Keywords) > 0 && input.InvestmentMonths >= noPresenceMonths {
		flags = append(flags, schema.RedFlag{
			Type:     schema.FlagNoAIPresence,
			Severity: schema.SeverityHigh,
			Message: fmt.Sprintf("AI assistants never mention the brand across %d tracked keywords",
				len(input.Keywords)),
			ScorePenalty: -1.5,
		})
	}

	return flags
}

func aiInsights(input schema.AIVisibilityInput, percent float64, mentioned int) []string {
	var insights []string

	if len(input.Keywords) == 0 {
		insights = append(insights, "No AI-assistant keywords tracked for this engagement")
		return insights
	}

	switch {
	case percent >= 60:
		insights = append(insights, fmt.Sprintf("Strong AI visibility: %.0f%% of possible exposure across %d keywords", percent, len(input.Keywords)))
	case percent >= 30:
		insights = append(insights, fmt.Sprintf("Partial AI visibility: %.0f%% of possible exposure across %d keywords", percent, len(input.Keywords)))
	default:
		insights = append(insights, fmt.Sprintf("Weak AI visibility: %.0f%% of possible exposure across %d keywords", percent, len(input.Keywords)))
	}

	insights = append(insights, fmt.Sprintf("Brand is mentioned for %d of %d tracked keywords", mentioned, len(input.Keywords)))

	return insights
}
