package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "rwexcli/internal/errors"
	"rwexcli/internal/exporter"
)

// WriteJSON validates the document and writes it as indented JSON. The JSON
// artifact is the full nested document and the dashboard's source of truth.
func WriteJSON(ctx context.Context, logger *slog.Logger, path string, doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to marshal insights document", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create insights directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewStorageError("failed to write insights JSON", err)
	}

	logger.InfoContext(ctx, "wrote insights document",
		slog.String("path", path),
		slog.Int("bytes", len(data)))
	return nil
}

// WriteCSVPackage writes one flat CSV per non-empty list section, named
// <base>_<section>.csv, for dashboard ingestion. Empty sections produce no
// file. Returns the filenames written.
func WriteCSVPackage(ctx context.Context, logger *slog.Logger, w *exporter.CSVWriter, base string, doc *Document) ([]string, error) {
	var written []string

	write := func(name string, headers []string, rows [][]string) error {
		if len(rows) == 0 {
			return nil
		}
		filename := fmt.Sprintf("%s_%s.csv", base, name)
		if err := w.WriteSimpleCSV(filename, headers, rows); err != nil {
			return apperrors.NewStorageError("failed to write "+filename, err)
		}
		written = append(written, filename)
		return nil
	}

	type csvSection struct {
		name    string
		headers []string
		rows    [][]string
	}

	sections := []csvSection{
		{"opportunities", commodityHeaders, commodityRows(doc.TopOpportunities)},
		{"opportunity_matrix", matrixHeaders, matrixRows(doc.OpportunityMatrix)},
		{"policy_recommendations", policyHeaders, policyRows(doc.PolicyRecommendations)},
		{"youth_sme_opportunities", youthSMEHeaders, youthSMERows(doc.YouthSMEOpportunities)},
		{"strategic_tier1_powerhouses", tierHeaders, tierRows(doc.StrategicMarkets.Tier1Powerhouses)},
		{"strategic_tier2_emerging", tierHeaders, tierRows(doc.StrategicMarkets.Tier2Emerging)},
		{"strategic_tier3_untapped", tierHeaders, tierRows(doc.StrategicMarkets.Tier3Untapped)},
	}
	if !doc.Predictions.Empty() {
		sections = append(sections,
			csvSection{"forecast_top15", topForecastHeaders, forecastRows(doc.Predictions.TopForecasts, true)},
			csvSection{"forecast_high_growth", forecastHeaders, forecastRows(doc.Predictions.HighGrowthMarkets, false)},
			csvSection{"forecast_emerging", forecastHeaders, forecastRows(doc.Predictions.EmergingOpportunities, false)},
		)
	}

	for _, s := range sections {
		if err := write(s.name, s.headers, s.rows); err != nil {
			return written, err
		}
	}

	logger.InfoContext(ctx, "wrote insights CSV package",
		slog.String("base", base),
		slog.Int("files", len(written)))
	return written, nil
}

// Column order in each CSV follows the field order of the section records.

var commodityHeaders = []string{
	"rank", "commodity", "sitc_code", "current_value_millions",
	"market_share_percent", "yoy_growth_percent", "recommendation",
}

func commodityRows(items []CommodityInsight) [][]string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			strconv.Itoa(c.Rank),
			c.Commodity,
			c.SITCCode,
			exporter.FormatFloat(c.CurrentValueMillions, -1),
			exporter.FormatFloat(c.MarketSharePercent, -1),
			exporter.FormatFloat(c.YoYGrowthPercent, -1),
			c.Recommendation,
		})
	}
	return rows
}

var matrixHeaders = []string{
	"commodity", "sitc_code", "opportunity_score", "growth_rate",
	"volatility", "market_share", "risk_level", "action_priority",
}

func matrixRows(items []OpportunityInsight) [][]string {
	rows := make([][]string, 0, len(items))
	for _, o := range items {
		rows = append(rows, []string{
			o.Commodity,
			o.SITCCode,
			exporter.FormatFloat(o.OpportunityScore, -1),
			exporter.FormatFloat(o.GrowthRate, -1),
			exporter.FormatFloat(o.Volatility, -1),
			exporter.FormatFloat(o.MarketShare, -1),
			o.RiskLevel,
			o.ActionPriority,
		})
	}
	return rows
}

var policyHeaders = []string{
	"priority", "area", "recommendation", "rationale",
	"target_stakeholders", "timeline", "expected_impact",
}

func policyRows(items []PolicyRecommendation) [][]string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			p.Priority,
			p.Area,
			p.Recommendation,
			p.Rationale,
			strings.Join(p.TargetStakeholders, ", "),
			p.Timeline,
			p.ExpectedImpact,
		})
	}
	return rows
}

var youthSMEHeaders = []string{
	"sector", "opportunity", "investment_required", "skills_needed",
	"potential_revenue", "market_demand", "support_available",
}

func youthSMERows(items []YouthSMEOpportunity) [][]string {
	rows := make([][]string, 0, len(items))
	for _, y := range items {
		rows = append(rows, []string{
			y.Sector,
			y.Opportunity,
			y.InvestmentRequired,
			strings.Join(y.SkillsNeeded, ", "),
			y.PotentialRevenue,
			y.MarketDemand,
			y.SupportAvailable,
		})
	}
	return rows
}

var tierHeaders = []string{
	"country", "growth_rate", "value_2022_millions", "strategy", "priority",
}

func tierRows(items []StrategicMarket) [][]string {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.Country,
			exporter.FormatFloat(m.GrowthRate, -1),
			exporter.FormatFloat(m.Value2022Millions, -1),
			m.Strategy,
			m.Priority,
		})
	}
	return rows
}

var forecastHeaders = []string{
	"country", "current_2022_millions", "predicted_2023_millions",
	"predicted_2024_millions", "predicted_2025_millions",
	"growth_percent", "cagr_2022_2025", "confidence_score",
	"volatility", "recommendation",
}

var topForecastHeaders = append([]string{"rank"}, forecastHeaders...)

func forecastRows(items []ForecastInsight, withRank bool) [][]string {
	rows := make([][]string, 0, len(items))
	for _, f := range items {
		row := []string{
			f.Country,
			exporter.FormatFloat(f.Current2022Millions, -1),
			exporter.FormatFloat(f.Predicted2023Millions, -1),
			exporter.FormatFloat(f.Predicted2024Millions, -1),
			exporter.FormatFloat(f.Predicted2025Millions, -1),
			exporter.FormatFloat(f.GrowthPercent, -1),
			exporter.FormatFloat(f.CAGR2022To2025, -1),
			exporter.FormatFloat(f.ConfidenceScore, -1),
			exporter.FormatFloat(f.Volatility, -1),
			f.Recommendation,
		}
		if withRank {
			row = append([]string{strconv.Itoa(f.Rank)}, row...)
		}
		rows = append(rows, row)
	}
	return rows
}
