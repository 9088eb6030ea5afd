package schema

// RedFlag is a detected anomaly condition. Flags are pure output: every
// scoring run recomputes them from scratch, nothing resolves or retries them.
type RedFlag struct {
	Type          FlagType `json:"type"`
	Severity      Severity `json:"severity"`
	Message       string   `json:"message"`
	ScorePenalty  float64  `json:"scorePenalty"`            // Always negative
	MissedRevenue *float64 `json:"missedRevenue,omitempty"` // Estimated dollars left on the table, when computable
}

// ScoreResult is the output of exactly one metric scorer.
//
// Details is supplementary, non-authoritative diagnostic data for reporting;
// no logic branches on its contents. Only Score, NormalizedScore, RedFlags
// and Insights are load-bearing.
type ScoreResult struct {
	Score           float64               `json:"score"`                   // Raw score on the 0-100 scale
	NormalizedScore int                   `json:"normalizedScore"`         // Bucketed 1-10 score, never 0, never above 10
	AdjustedScore   *int                  `json:"adjustedScore,omitempty"` // Present only when red-flag penalties changed the normalized score
	Details         map[DetailKey]float64 `json:"details,omitempty"`
	Insights        []string              `json:"insights"` // Ordered: overall assessment first, then specifics, then advice
	RedFlags        []RedFlag             `json:"redFlags,omitempty"`
}

// EffectiveScore returns the adjusted score when penalties applied,
// otherwise the normalized score.
func (r ScoreResult) EffectiveScore() int {
	if r.AdjustedScore != nil {
		return *r.AdjustedScore
	}
	return r.NormalizedScore
}

// ScoreBreakdown carries the five per-metric results inside an overall score.
// Field names form the wire contract with downstream report builders.
type ScoreBreakdown struct {
	AuthorityLinks   ScoreResult `json:"authorityLinks"`
	AuthorityDomains ScoreResult `json:"authorityDomains"`
	TrafficGrowth    ScoreResult `json:"trafficGrowth"`
	Rankings         ScoreResult `json:"rankings"`
	AIVisibility     ScoreResult `json:"aiVisibility"`
}

// OverallScoreData aggregates the five metric results into one comparable score.
type OverallScoreData struct {
	Client           string           `json:"client,omitempty"`
	WeightedScore    float64          `json:"overallScore"` // Weighted raw score, 0-100
	NormalizedScore  int              `json:"normalizedScore"`
	PerformanceLevel PerformanceLevel `json:"performanceLevel"`
	Breakdown        ScoreBreakdown   `json:"scoreBreakdown"`
	Recommendations  []string         `json:"recommendations"`
	RedFlags         []RedFlag        `json:"redFlags,omitempty"` // Per-metric flags plus cross-metric ROI flags
	Confidence       ConfidenceLevel  `json:"confidence"`
}

// RedFlagsCount reports how many flags the run raised across all detectors.
func (o OverallScoreData) RedFlagsCount() int {
	return len(o.RedFlags)
}

// PartialScoreData is the degraded aggregation over whichever metrics were available.
// Confidence is the fraction of total possible weight backed by data, as a percentage.
type PartialScoreData struct {
	Client           string                     `json:"client,omitempty"`
	WeightedScore    float64                    `json:"overallScore"`
	NormalizedScore  int                        `json:"normalizedScore"`
	Confidence       float64                    `json:"confidence"`
	AvailableMetrics []MetricName               `json:"availableMetrics"`
	MissingMetrics   []MetricName               `json:"missingMetrics"`
	Breakdown        map[MetricName]ScoreResult `json:"scoreBreakdown"`
}
