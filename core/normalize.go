package core

import (
	"math"

	"github.com/seolens/seolens/schema"
)

// normalizeScore buckets a 0-100 raw score onto the shared 1-10 scale.
// Every metric scorer and the aggregator must use this exact table;
// divergence here silently breaks comparability between metrics.
// Any finite input, including negative, maps to at least 1.
func normalizeScore(raw float64) int {
	switch {
	case raw >= 90:
		return 10
	case raw >= 80:
		return 9
	case raw >= 70:
		return 8
	case raw >= 60:
		return 7
	case raw >= 50:
		return 6
	case raw >= 40:
		return 5
	case raw >= 30:
		return 4
	case raw >= 20:
		return 3
	case raw >= 10:
		return 2
	default:
		return 1
	}
}

// applyPenalties subtracts the red-flag penalties from a normalized score,
// rounding to the nearest step and flooring at 1. It returns nil when the
// flags did not change the score, so callers can leave AdjustedScore absent.
func applyPenalties(normalized int, flags []schema.RedFlag) *int {
	if len(flags) == 0 {
		return nil
	}
	var total float64
	for _, f := range flags {
		total += f.ScorePenalty
	}
	adjusted := int(math.Round(float64(normalized) + total))
	if adjusted < 1 {
		adjusted = 1
	}
	if adjusted == normalized {
		return nil
	}
	return &adjusted
}

// clampScore caps a raw score to the 0-100 range.
func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// mean averages a slice of float64 values. Empty slices average to 0.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// meanInts averages a slice of int values. Empty slices average to 0.
func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// trailingVsPreceding splits the last six points of a monthly series into the
// trailing 3-month average and the preceding 3-month average. The second
// return is false when the series is shorter than six points.
func trailingVsPreceding(series []int) (trailing, preceding float64, ok bool) {
	if len(series) < 6 {
		return 0, 0, false
	}
	last := series[len(series)-3:]
	prior := series[len(series)-6 : len(series)-3]
	return meanInts(last), meanInts(prior), true
}
