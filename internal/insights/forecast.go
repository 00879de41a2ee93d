package insights

import (
	"sort"

	"rwexcli/internal/dataset"
)

const (
	topForecastCount     = 15
	highGrowthCount      = 10
	emergingCount        = 10
	highConfidenceCutoff = 70
)

// ForecastOutlook builds the optional predictions section from the forecast
// table. An empty table yields the zero-value section, which serializes as
// an empty object.
func ForecastOutlook(rows []dataset.Forecast) Predictions {
	if len(rows) == 0 {
		return Predictions{}
	}

	return Predictions{
		Summary:               forecastSummary(rows),
		TopForecasts:          topForecasts(rows),
		HighGrowthMarkets:     highGrowthMarkets(rows),
		EmergingOpportunities: emergingOpportunities(rows),
		TierClassification:    classifyTiers(rows),
	}
}

func forecastSummary(rows []dataset.Forecast) *ForecastSummary {
	s := &ForecastSummary{TotalCountries: len(rows)}

	var confidenceSum float64
	for _, row := range rows {
		s.TotalPredicted2025 += row.Predicted2025
		s.TotalCurrent2022 += row.Current2022
		confidenceSum += row.Confidence
		if row.Confidence > highConfidenceCutoff {
			s.HighConfidenceMarkets++
		}
	}

	if s.TotalCurrent2022 != 0 {
		s.OverallGrowthPercent = (s.TotalPredicted2025/s.TotalCurrent2022 - 1) * 100
	}
	s.AvgConfidence = confidenceSum / float64(len(rows))

	return s
}

func topForecasts(rows []dataset.Forecast) []ForecastInsight {
	ranked := sortedBy(rows, func(a, b dataset.Forecast) bool {
		return a.Predicted2025 > b.Predicted2025
	})
	top := toInsights(head(ranked, topForecastCount))
	for i := range top {
		top[i].Rank = i + 1
	}
	return top
}

func highGrowthMarkets(rows []dataset.Forecast) []ForecastInsight {
	var filtered []dataset.Forecast
	for _, row := range rows {
		if row.GrowthPercent > 20 && row.Confidence > 70 {
			filtered = append(filtered, row)
		}
	}
	ranked := sortedBy(filtered, func(a, b dataset.Forecast) bool {
		return a.GrowthPercent > b.GrowthPercent
	})
	return toInsights(head(ranked, highGrowthCount))
}

func emergingOpportunities(rows []dataset.Forecast) []ForecastInsight {
	var filtered []dataset.Forecast
	for _, row := range rows {
		if row.Current2022 < 10 && row.GrowthPercent > 50 {
			filtered = append(filtered, row)
		}
	}
	ranked := sortedBy(filtered, func(a, b dataset.Forecast) bool {
		return a.GrowthPercent > b.GrowthPercent
	})
	return toInsights(head(ranked, emergingCount))
}

// classifyTiers computes the three forecast tiers. Membership rules are
// evaluated independently per tier, so a country may land in several tiers
// or in none.
func classifyTiers(rows []dataset.Forecast) *TierClassification {
	tc := &TierClassification{
		TierA: ForecastTier{Countries: []string{}},
		TierB: ForecastTier{Countries: []string{}},
		TierC: ForecastTier{Countries: []string{}},
	}

	for _, row := range rows {
		if row.Predicted2025 > 50 && row.GrowthPercent > 20 && row.Confidence > 70 {
			addToTier(&tc.TierA, row)
		}
		if row.Predicted2025 >= 10 && row.Predicted2025 <= 50 && row.GrowthPercent > 40 && row.Confidence > 60 {
			addToTier(&tc.TierB, row)
		}
		if row.Predicted2025 < 10 && row.GrowthPercent > 80 && row.Current2022 > 0.5 {
			addToTier(&tc.TierC, row)
		}
	}

	return tc
}

func addToTier(tier *ForecastTier, row dataset.Forecast) {
	tier.Count++
	tier.TotalPredicted2025 += row.Predicted2025
	tier.Countries = append(tier.Countries, row.Country)
}

// forecastRecommendation walks the priority cascade; the first matching
// clause wins, so clause order is load-bearing.
func forecastRecommendation(row dataset.Forecast) string {
	value := row.Predicted2025
	growth := row.GrowthPercent
	confidence := row.Confidence

	switch {
	case value > 100 && growth > 30 && confidence > 80:
		return "CRITICAL PRIORITY: Scale operations immediately, high-value high-growth market"
	case value > 50 && growth > 20 && confidence > 70:
		return "HIGH PRIORITY: Increase investment, strong growth trajectory"
	case growth > 50 && confidence > 60:
		return "GROWTH OPPORTUNITY: Develop market entry strategy, high potential"
	case confidence < 50:
		return "MONITOR: Low confidence, collect more data before major investment"
	default:
		return "MAINTAIN: Continue current strategy, stable market"
	}
}

func toInsights(rows []dataset.Forecast) []ForecastInsight {
	insights := make([]ForecastInsight, 0, len(rows))
	for _, row := range rows {
		insights = append(insights, ForecastInsight{
			Country:               row.Country,
			Current2022Millions:   row.Current2022,
			Predicted2023Millions: row.Predicted2023,
			Predicted2024Millions: row.Predicted2024,
			Predicted2025Millions: row.Predicted2025,
			GrowthPercent:         row.GrowthPercent,
			CAGR2022To2025:        row.CAGR,
			ConfidenceScore:       row.Confidence,
			Volatility:            row.Volatility,
			Recommendation:        forecastRecommendation(row),
		})
	}
	return insights
}

func sortedBy(rows []dataset.Forecast, less func(a, b dataset.Forecast) bool) []dataset.Forecast {
	sorted := make([]dataset.Forecast, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

func head(rows []dataset.Forecast, n int) []dataset.Forecast {
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}
