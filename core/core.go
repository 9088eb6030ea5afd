// Package core has the scoring, red-flag and aggregation logic for seolens.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// shared mutable state, no clocks. The only shared objects are the
// normalization buckets and the weight configuration, both read-only, so every
// entry point is safe to call concurrently.
package core

import "github.com/seolens/seolens/schema"

// Policy is the canonical scoring strategy. It binds an immutable Config so
// test suites can override weights and thresholds without touching globals.
type Policy struct {
	cfg Config
}

// NewPolicy creates a scoring policy from the given configuration.
func NewPolicy(cfg Config) *Policy {
	return &Policy{cfg: cfg}
}

// NewDefaultPolicy creates a scoring policy with the production configuration.
func NewDefaultPolicy() *Policy {
	return NewPolicy(DefaultConfig())
}

// Config returns the policy's configuration.
func (p *Policy) Config() Config {
	return p.cfg
}

// Score runs the full pipeline: input gate, five metric scorers, aggregation.
// It fails with *MalformedInputError when a required section or field is
// absent, and with *ValidationError when spend or duration fall below the
// configured minimums. All other irregular inputs are scored as edge cases.
func (p *Policy) Score(input schema.ScoreInput) (schema.OverallScoreData, error) {
	if err := checkRequiredSections(input); err != nil {
		return schema.OverallScoreData{}, err
	}
	if err := p.ValidateScoreInputs(input.AuthorityLinks.MonthlySpend, input.AuthorityLinks.InvestmentMonths); err != nil {
		return schema.OverallScoreData{}, err
	}

	breakdown := schema.ScoreBreakdown{
		AuthorityLinks:   p.ScoreAuthorityLinks(*input.AuthorityLinks),
		AuthorityDomains: p.ScoreAuthorityDomains(*input.AuthorityDomains),
		TrafficGrowth:    p.ScoreTrafficGrowth(*input.TrafficGrowth),
		Rankings:         p.ScoreRankingImprovements(*input.RankingImprovements),
		AIVisibility:     p.ScoreAIVisibility(*input.AIVisibility),
	}

	return p.aggregate(input, breakdown), nil
}

// checkRequiredSections rejects full scoring when any metric section is
// missing, or when the links section lacks the spend and duration fields the
// ROI checks depend on. Failing fast here beats silently coercing to zero,
// which would report "zero links expected" as a perfect score.
func checkRequiredSections(input schema.ScoreInput) error {
	var missing []string
	if input.AuthorityLinks == nil {
		missing = append(missing, "authorityLinks section is required")
	} else {
		if input.AuthorityLinks.MonthlySpend <= 0 {
			missing = append(missing, "authorityLinks.monthlySpend is required")
		}
		if input.AuthorityLinks.InvestmentMonths <= 0 {
			missing = append(missing, "authorityLinks.investmentMonths is required")
		}
	}
	if input.AuthorityDomains == nil {
		missing = append(missing, "authorityDomains section is required")
	}
	if input.TrafficGrowth == nil {
		missing = append(missing, "trafficGrowth section is required")
	}
	if input.RankingImprovements == nil {
		missing = append(missing, "rankingImprovements section is required")
	}
	if input.AIVisibility == nil {
		missing = append(missing, "aiVisibility section is required")
	}
	if len(missing) > 0 {
		return &MalformedInputError{Fields: missing}
	}
	return nil
}
