package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/seolens/seolens/core"
	"github.com/seolens/seolens/internal/contract"
	"github.com/seolens/seolens/schema"

	"github.com/olekukonko/tablewriter"
)

// metricDefinition describes one scored metric for the metrics command.
type metricDefinition struct {
	Name    schema.MetricName `json:"name"`
	Label   string            `json:"label"`
	Weight  float64           `json:"weight"`
	Purpose string            `json:"purpose"`
	Factors []string          `json:"factors"`
}

// flagDefinition describes one red-flag detector for the metrics command.
type flagDefinition struct {
	Flag     schema.FlagType `json:"flag"`
	RaisedBy string          `json:"raisedBy"`
	Meaning  string          `json:"meaning"`
}

// modelRenderModel is the complete render model for the metrics command.
type modelRenderModel struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metrics     []metricDefinition `json:"metrics"`
	Buckets     []string           `json:"normalizationBuckets"`
	RedFlags    []flagDefinition   `json:"redFlags"`
	InputGates  map[string]string  `json:"inputGates"`
}

// writeMetricsDefinitions outputs the scoring model definitions, dispatching
// based on the output format configured.
func writeMetricsDefinitions(scoring core.Config, cfg *contract.Config) error {
	renderModel := buildModelRenderModel(scoring)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"Metric", "Weight", "Purpose", "Factors"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, m := range renderModel.Metrics {
					record := []string{
						string(m.Name),
						fmt.Sprintf("%.2f", m.Weight),
						m.Purpose,
						strings.Join(m.Factors, "|"),
					}
					if err := csvWriter.Write(record); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(renderModel, w)
		}, "Wrote table")
	}
}

// writeMetricsTable generates and writes the human-readable model description.
func writeMetricsTable(renderModel *modelRenderModel, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s\n%s\n\n", renderModel.Title, renderModel.Description); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Weight", "Purpose", "Factors"})

	var data [][]string
	for _, m := range renderModel.Metrics {
		data = append(data, []string{
			m.Label,
			fmt.Sprintf("%.2f", m.Weight),
			m.Purpose,
			strings.Join(m.Factors, ", "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "\nNormalization buckets: %s\n", strings.Join(renderModel.Buckets, ", ")); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer, "\nRed flags:"); err != nil {
		return err
	}
	flagTable := tablewriter.NewWriter(writer)
	flagTable.Header([]string{"Flag", "Raised By", "Meaning"})
	var flagData [][]string
	for _, f := range renderModel.RedFlags {
		flagData = append(flagData, []string{string(f.Flag), f.RaisedBy, f.Meaning})
	}
	if err := flagTable.Bulk(flagData); err != nil {
		return err
	}
	if err := flagTable.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(writer, "Input gates:"); err != nil {
		return err
	}
	for _, key := range []string{"minimum spend", "minimum duration"} {
		if _, err := fmt.Fprintf(writer, "  %s: %s\n", key, renderModel.InputGates[key]); err != nil {
			return err
		}
	}
	return nil
}

// buildModelRenderModel constructs the complete render model with all processed data.
func buildModelRenderModel(scoring core.Config) *modelRenderModel {
	metrics := []metricDefinition{
		{
			Name:    schema.MetricAuthorityLinks,
			Purpose: "Link acquisition pace against the expected-links spend model",
			Factors: []string{"ActualLinks", "MonthlySpend", "InvestmentMonths", "Quality", "MonthlyGrowth"},
		},
		{
			Name:    schema.MetricAuthorityDomains,
			Purpose: "Referring-domain standing against the competitive field",
			Factors: []string{"ClientDomains", "CompetitorDomains", "GrowthTrend"},
		},
		{
			Name:    schema.MetricTrafficGrowth,
			Purpose: "Annualized organic traffic growth against competitor benchmarks",
			Factors: []string{"GrowthPercent", "CompetitorGrowth", "TopKeywordsDependency"},
		},
		{
			Name:    schema.MetricRankings,
			Purpose: "Keyword position movement weighted by position value",
			Factors: []string{"Changes", "Commercial", "InvestmentMonths"},
		},
		{
			Name:    schema.MetricAIVisibility,
			Purpose: "Brand presence in AI-assistant answers for tracked keywords",
			Factors: []string{"MentionPosition", "AfterFollowUp", "BrandRecognized"},
		},
	}
	for i := range metrics {
		metrics[i].Label = schema.MetricDisplayName[metrics[i].Name]
		metrics[i].Weight = scoring.Weights.Of(metrics[i].Name)
	}

	buckets := []string{
		">=90: 10", ">=80: 9", ">=70: 8", ">=60: 7", ">=50: 6",
		">=40: 5", ">=30: 4", ">=20: 3", ">=10: 2", "<10: 1",
	}

	flags := []flagDefinition{
		{schema.FlagSevereLinkDeficit, "authorityLinks", "Link acquisition far below what the spend should buy"},
		{schema.FlagNoRecentLinks, "authorityLinks", "No new links in the last six months"},
		{schema.FlagLowQualityLinks, "authorityLinks", "Link profile dominated by low-quality placements"},
		{schema.FlagDecliningLinkVelocity, "authorityLinks", "Monthly link acquisition is slowing down"},
		{schema.FlagMassiveAuthorityGap, "authorityDomains", "Referring domains far behind the competitive field"},
		{schema.FlagStagnantDomainGrowth, "authorityDomains", "Referring-domain count has stopped growing"},
		{schema.FlagBehindAllCompetitors, "authorityDomains", "Fewer referring domains than every tracked competitor"},
		{schema.FlagStagnantProgress, "trafficGrowth", "Traffic flat or declining despite sustained investment"},
		{schema.FlagKeywordConcentration, "trafficGrowth", "Traffic depends too heavily on a few keywords"},
		{schema.FlagPoorRankingPerformance, "rankingImprovements", "Ranking gains too small for the engagement length"},
		{schema.FlagNoCommercialRankings, "rankingImprovements", "No improvements on commercial-intent keywords"},
		{schema.FlagWidespreadDeclines, "rankingImprovements", "More keywords declining than improving"},
		{schema.FlagAIInvisibility, "aiVisibility", "Brand rarely surfaces in AI-assistant answers"},
		{schema.FlagNoAIPresence, "aiVisibility", "Brand absent from every tracked AI answer"},
		{schema.FlagHighSpendPoorResults, "aggregator", "High spend paired with a poor overall score"},
		{schema.FlagLongTermUnderperformance, "aggregator", "A long engagement still scoring below average"},
	}

	return &modelRenderModel{
		Title:       "Seolens Scoring Model",
		Description: "Overall score = weighted sum of the five raw metric scores (0-100), bucketed to 1-10",
		Metrics:     metrics,
		Buckets:     buckets,
		RedFlags:    flags,
		InputGates: map[string]string{
			"minimum spend":    fmt.Sprintf("$%.0f/month", scoring.MinMonthlySpend),
			"minimum duration": fmt.Sprintf("%d months", scoring.MinInvestmentMonths),
		},
	}
}
