// Package schema has input records, score models and constants for all parts of seolens.
package schema

// LinkQuality breaks authority links down by editorial quality tier.
type LinkQuality struct {
	HighQuality   int `json:"highQuality"`   // Editorially-given links from authoritative sites
	MediumQuality int `json:"mediumQuality"` // Standard niche-relevant links
	LowQuality    int `json:"lowQuality"`    // Directory, forum and low-trust links
}

// AuthorityLinksInput holds the raw backlink measurements for one client.
// MonthlySpend and InvestmentMonths are required because the expected-links
// model and downstream ROI checks depend on them.
type AuthorityLinksInput struct {
	ActualLinks        int          `json:"actualLinks"`                  // Authority links acquired over the whole engagement
	MonthlySpend       float64      `json:"monthlySpend"`                 // Monthly budget in dollars
	InvestmentMonths   int          `json:"investmentMonths"`             // Elapsed engagement duration in months
	RecentLinks6Months *int         `json:"recentLinks6Months,omitempty"` // Links acquired in the trailing 6 months, if tracked
	Quality            *LinkQuality `json:"quality,omitempty"`            // Optional quality breakdown
	MonthlyGrowth      []int        `json:"monthlyGrowth,omitempty"`      // Optional per-month link acquisition series
}

// AuthorityDomainsInput holds referring-domain counts for the client and its competitors.
type AuthorityDomainsInput struct {
	ClientDomains     int   `json:"clientDomains"`         // Referring domains pointing at the client
	CompetitorDomains []int `json:"competitorDomains"`     // Referring domains per competitor
	GrowthTrend       []int `json:"growthTrend,omitempty"` // Optional monthly domain-count series
}

// TrafficGrowthInput holds organic traffic growth measurements.
type TrafficGrowthInput struct {
	GrowthPercent         float64   `json:"growthPercent"`         // Client traffic growth over the engagement, percent
	CompetitorGrowth      []float64 `json:"competitorGrowth"`      // Competitor growth rates over the same window, percent
	InvestmentMonths      int       `json:"investmentMonths"`      // Elapsed engagement duration in months
	TopKeywordsDependency float64   `json:"topKeywordsDependency"` // Fraction of traffic concentrated in the top keywords (0-1)
}

// RankingChange records one keyword's position movement over the engagement.
// Positions above 100 are treated as unranked.
type RankingChange struct {
	Keyword     string `json:"keyword"`
	OldPosition int    `json:"oldPosition"`
	NewPosition int    `json:"newPosition"`
	Commercial  bool   `json:"commercial"` // Commercial/transactional intent keyword
}

// RankingImprovementsInput holds the set of tracked keyword movements.
type RankingImprovementsInput struct {
	Changes          []RankingChange `json:"changes"`
	InvestmentMonths int             `json:"investmentMonths"`
}

// AIKeywordResult records how an AI assistant responded for one tracked keyword.
// MentionPosition is 0 when the brand was not mentioned at all.
type AIKeywordResult struct {
	Keyword         string `json:"keyword"`
	MentionPosition int    `json:"mentionPosition"`
	AfterFollowUp   bool   `json:"afterFollowUp"`   // Mention only surfaced after a clarifying follow-up
	BrandRecognized bool   `json:"brandRecognized"` // Brand recognized but not recommended
}

// AIVisibilityInput holds AI-assistant mention results for the tracked keyword set.
type AIVisibilityInput struct {
	Keywords         []AIKeywordResult `json:"keywords"`
	InvestmentMonths int               `json:"investmentMonths"`
}

// ScoreInput is the full record supplied by the data-acquisition collaborator.
// Sections may be nil for partial scoring; full scoring requires all five.
type ScoreInput struct {
	Client              string                    `json:"client"`
	AuthorityLinks      *AuthorityLinksInput      `json:"authorityLinks,omitempty"`
	AuthorityDomains    *AuthorityDomainsInput    `json:"authorityDomains,omitempty"`
	TrafficGrowth       *TrafficGrowthInput       `json:"trafficGrowth,omitempty"`
	RankingImprovements *RankingImprovementsInput `json:"rankingImprovements,omitempty"`
	AIVisibility        *AIVisibilityInput        `json:"aiVisibility,omitempty"`
}
