package core

import "github.com/seolens/seolens/schema"

// PartialScore degrades the aggregation when some metrics are unavailable:
// weights renormalize over the available subset and confidence reports how
// much of the total weight was actually backed by data, as a percentage.
// Cross-metric ROI detectors do not run here; they need the full input set.
func (p *Policy) PartialScore(input schema.ScoreInput) schema.PartialScoreData {
	var weightedSum, totalWeight float64
	var available, missing []schema.MetricName
	results := make(map[schema.MetricName]schema.ScoreResult)

	score := func(name schema.MetricName, result schema.ScoreResult) {
		weight := p.cfg.Weights.Of(name)
		weightedSum += result.Score * weight
		totalWeight += weight
		available = append(available, name)
		results[name] = result
	}

	if input.AuthorityLinks != nil {
		score(schema.MetricAuthorityLinks, p.ScoreAuthorityLinks(*input.AuthorityLinks))
	} else {
		missing = append(missing, schema.MetricAuthorityLinks)
	}
	if input.AuthorityDomains != nil {
		score(schema.MetricAuthorityDomains, p.ScoreAuthorityDomains(*input.AuthorityDomains))
	} else {
		missing = append(missing, schema.MetricAuthorityDomains)
	}
	if input.TrafficGrowth != nil {
		score(schema.MetricTrafficGrowth, p.ScoreTrafficGrowth(*input.TrafficGrowth))
	} else {
		missing = append(missing, schema.MetricTrafficGrowth)
	}
	if input.RankingImprovements != nil {
		score(schema.MetricRankings, p.ScoreRankingImprovements(*input.RankingImprovements))
	} else {
		missing = append(missing, schema.MetricRankings)
	}
	if input.AIVisibility != nil {
		score(schema.MetricAIVisibility, p.ScoreAIVisibility(*input.AIVisibility))
	} else {
		missing = append(missing, schema.MetricAIVisibility)
	}

	if totalWeight == 0 {
		return schema.PartialScoreData{
			Client:           input.Client,
			WeightedScore:    0,
			NormalizedScore:  1,
			Confidence:       0,
			AvailableMetrics: available,
			MissingMetrics:   missing,
			Breakdown:        results,
		}
	}

	partial := weightedSum / totalWeight
	return schema.PartialScoreData{
		Client:           input.Client,
		WeightedScore:    partial,
		NormalizedScore:  normalizeScore(partial),
		Confidence:       totalWeight * 100,
		AvailableMetrics: available,
		MissingMetrics:   missing,
		Breakdown:        results,
	}
}
