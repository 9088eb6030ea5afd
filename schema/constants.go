package schema

// Custom string types for type safety.
type (
	// Severity ranks how urgent a red flag is.
	Severity string

	// FlagType identifies a red-flag detector.
	FlagType string

	// PerformanceLevel is the qualitative tier derived from the weighted score.
	PerformanceLevel string

	// ConfidenceLevel is the qualitative confidence derived from engagement duration.
	ConfidenceLevel string

	// MetricName identifies one of the five scored metrics.
	MetricName string

	// DetailKey represents keys used in score detail maps.
	DetailKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All red-flag severities.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

// Red-flag types raised by the metric scorers.
const (
	FlagSevereLinkDeficit      FlagType = "SEVERE_LINK_DEFICIT"
	FlagNoRecentLinks          FlagType = "NO_RECENT_LINKS"
	FlagLowQualityLinks        FlagType = "LOW_QUALITY_LINKS"
	FlagDecliningLinkVelocity  FlagType = "DECLINING_LINK_VELOCITY"
	FlagMassiveAuthorityGap    FlagType = "MASSIVE_AUTHORITY_GAP"
	FlagStagnantDomainGrowth   FlagType = "STAGNANT_DOMAIN_GROWTH"
	FlagBehindAllCompetitors   FlagType = "BEHIND_ALL_COMPETITORS"
	FlagStagnantProgress       FlagType = "STAGNANT_PROGRESS"
	FlagKeywordConcentration   FlagType = "KEYWORD_CONCENTRATION_RISK"
	FlagPoorRankingPerformance FlagType = "POOR_RANKING_PERFORMANCE"
	FlagNoCommercialRankings   FlagType = "NO_COMMERCIAL_RANKINGS"
	FlagWidespreadDeclines     FlagType = "WIDESPREAD_RANKING_DECLINES"
	FlagAIInvisibility         FlagType = "AI_INVISIBILITY"
	FlagNoAIPresence           FlagType = "NO_AI_PRESENCE"
)

// Red-flag types raised only at aggregation time.
const (
	FlagHighSpendPoorResults     FlagType = "HIGH_SPEND_POOR_RESULTS"
	FlagLongTermUnderperformance FlagType = "LONG_TERM_UNDERPERFORMANCE"
)

// All performance tiers.
const (
	LevelExcellent PerformanceLevel = "Excellent"
	LevelGood      PerformanceLevel = "Good"
	LevelAverage   PerformanceLevel = "Average"
	LevelPoor      PerformanceLevel = "Poor"
	LevelVeryPoor  PerformanceLevel = "Very Poor"
)

// All confidence levels.
const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// The five scored metrics, in aggregation weight order.
const (
	MetricAuthorityLinks   MetricName = "authorityLinks"
	MetricAuthorityDomains MetricName = "authorityDomains"
	MetricTrafficGrowth    MetricName = "trafficGrowth"
	MetricRankings         MetricName = "rankings"
	MetricAIVisibility     MetricName = "aiVisibility"
)

// MetricDisplayName maps metric names to human-readable report labels.
var MetricDisplayName = map[MetricName]string{
	MetricAuthorityLinks:   "Authority Links",
	MetricAuthorityDomains: "Authority Domains",
	MetricTrafficGrowth:    "Traffic Growth",
	MetricRankings:         "Keyword Rankings",
	MetricAIVisibility:     "AI Visibility",
}

// AllMetrics lists the five metrics in canonical order.
var AllMetrics = []MetricName{
	MetricAuthorityLinks,
	MetricAuthorityDomains,
	MetricTrafficGrowth,
	MetricRankings,
	MetricAIVisibility,
}

// Detail keys used in score detail maps. Diagnostic only; never drives logic.
const (
	DetailExpectedLinks       DetailKey = "expected_links"
	DetailActualLinks         DetailKey = "actual_links"
	DetailCostPerLink         DetailKey = "cost_per_link"
	DetailMonthlyLinkRate     DetailKey = "monthly_link_rate"
	DetailAvgCompetitor       DetailKey = "avg_competitor_domains"
	DetailClientDomains       DetailKey = "client_domains"
	DetailDomainPercent       DetailKey = "domain_percent"
	DetailAnnualizedGrowth    DetailKey = "annualized_growth"
	DetailCompetitorGrowth    DetailKey = "avg_competitor_growth"
	DetailRelativePerformance DetailKey = "relative_performance"
	DetailTotalValue          DetailKey = "total_value"
	DetailPossibleValue       DetailKey = "total_possible_value"
	DetailTop3Count           DetailKey = "top3_count"
	DetailTop10Count          DetailKey = "top10_count"
	DetailTop20Count          DetailKey = "top20_count"
	DetailNewRankings         DetailKey = "new_rankings"
	DetailAIPoints            DetailKey = "ai_points"
	DetailAIPossiblePoints    DetailKey = "ai_possible_points"
	DetailAIMentioned         DetailKey = "ai_mentioned_count"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All run-history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid run-history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
