package insights

import (
	"math"

	"rwexcli/internal/dataset"
)

// MarketTrends summarizes the quarterly growth series. The headline trend
// and the seasonal pattern are fixed findings from the analysis; only the
// average growth and the volatility index come from the data. Without a
// growth column the section degrades to a zero average and an UNKNOWN
// volatility index.
func MarketTrends(q dataset.Quarterly) TrendInsight {
	return TrendInsight{
		TotalExportsTrend: "increasing",
		GrowthRateAvg:     averageGrowth(q),
		SeasonalPatterns: SeasonalPatterns{
			PeakQuarter: "Q3",
			PeakSectors: []string{"Food and Live Animals", "Agricultural Products"},
		},
		VolatilityIndex: volatilityIndex(q),
	}
}

func averageGrowth(q dataset.Quarterly) float64 {
	if !q.HasGrowth {
		return 0
	}
	values := nonNilValues(q.Growth)
	if len(values) == 0 {
		return 0
	}
	return mean(values)
}

// volatilityIndex grades the sample standard deviation of the quarterly
// growth series. A missing column, or one with no usable values, grades as
// UNKNOWN.
func volatilityIndex(q dataset.Quarterly) string {
	if !q.HasGrowth {
		return "UNKNOWN"
	}
	values := nonNilValues(q.Growth)
	if len(values) == 0 {
		return "UNKNOWN"
	}

	stdDev := sampleStdDev(values)
	switch {
	case stdDev < 20:
		return "LOW"
	case stdDev < 40:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}

func nonNilValues(values []*float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation used as the volatility measure
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}
