package schema

// severityRank orders severities from most to least urgent.
var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
}

// MoreSevere reports whether a outranks b.
func MoreSevere(a, b Severity) bool {
	return severityRank[a] < severityRank[b]
}

// PerformanceLevelFor buckets a weighted raw score (0-100) into its tier.
func PerformanceLevelFor(weighted float64) PerformanceLevel {
	switch {
	case weighted >= 80:
		return LevelExcellent
	case weighted >= 60:
		return LevelGood
	case weighted >= 40:
		return LevelAverage
	case weighted >= 20:
		return LevelPoor
	default:
		return LevelVeryPoor
	}
}

// ConfidenceFor derives the qualitative confidence level from how many
// months of engagement back the measurements.
func ConfidenceFor(investmentMonths int) ConfidenceLevel {
	switch {
	case investmentMonths >= 8:
		return ConfidenceHigh
	case investmentMonths >= 6:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// FlagCountBySeverity tallies red flags per severity.
func FlagCountBySeverity(flags []RedFlag) map[Severity]int {
	counts := make(map[Severity]int)
	for _, f := range flags {
		counts[f.Severity]++
	}
	return counts
}
