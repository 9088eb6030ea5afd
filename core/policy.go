package core

import "github.com/seolens/seolens/schema"

// Default values for the scoring configuration.
const (
	DefaultMinMonthlySpend     = 1000.0
	DefaultMinInvestmentMonths = 6

	// Expected authority links per $1000 of monthly spend per month.
	DefaultLinksPerThousand = 1.5
)

// Weights holds the aggregation weight of each metric. The five weights must
// sum to exactly 1.0; comparability across clients depends on it.
type Weights struct {
	AuthorityLinks   float64
	AuthorityDomains float64
	TrafficGrowth    float64
	Rankings         float64
	AIVisibility     float64
}

// Sum adds up all five weights.
func (w Weights) Sum() float64 {
	return w.AuthorityLinks + w.AuthorityDomains + w.TrafficGrowth + w.Rankings + w.AIVisibility
}

// Of returns the weight for a metric name.
func (w Weights) Of(name schema.MetricName) float64 {
	switch name {
	case schema.MetricAuthorityLinks:
		return w.AuthorityLinks
	case schema.MetricAuthorityDomains:
		return w.AuthorityDomains
	case schema.MetricTrafficGrowth:
		return w.TrafficGrowth
	case schema.MetricRankings:
		return w.Rankings
	case schema.MetricAIVisibility:
		return w.AIVisibility
	default:
		return 0
	}
}

// Config is the immutable configuration a Policy is constructed with.
// Copies are cheap; nothing mutates it after construction.
type Config struct {
	Weights Weights

	// Input gate minimums.
	MinMonthlySpend     float64
	MinInvestmentMonths int

	// Expected-links model rate (links per $1000/month of spend per month).
	LinksPerThousand float64

	// Cross-metric ROI thresholds used at aggregation time.
	HighSpendThreshold  float64 // monthly spend considered "high"
	HighSpendScoreFloor float64 // mean normalized score below this flags HIGH_SPEND_POOR_RESULTS
	LongTermMonths      int     // engagement length considered "long term"
	LongTermScoreFloor  float64 // mean normalized score below this flags LONG_TERM_UNDERPERFORMANCE
	CrossMetricPenalty  float64 // penalty attached to each ROI flag
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			AuthorityLinks:   0.35,
			AuthorityDomains: 0.20,
			TrafficGrowth:    0.20,
			Rankings:         0.15,
			AIVisibility:     0.10,
		},
		MinMonthlySpend:     DefaultMinMonthlySpend,
		MinInvestmentMonths: DefaultMinInvestmentMonths,
		LinksPerThousand:    DefaultLinksPerThousand,
		HighSpendThreshold:  5000,
		HighSpendScoreFloor: 4,
		LongTermMonths:      18,
		LongTermScoreFloor:  5,
		CrossMetricPenalty:  -2,
	}
}
