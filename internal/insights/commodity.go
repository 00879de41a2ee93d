package insights

import (
	"sort"

	"rwexcli/internal/dataset"
)

const topCommodityCount = 5

// TopCommodities ranks commodities by current-period export value and keeps
// the top five, each with a growth-band recommendation. Missing growth is
// treated as zero, which lands in the MAINTAIN band.
func TopCommodities(rows []dataset.Commodity) []CommodityInsight {
	ranked := make([]dataset.Commodity, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CurrentValue > ranked[j].CurrentValue
	})

	n := topCommodityCount
	if n > len(ranked) {
		n = len(ranked)
	}

	top := make([]CommodityInsight, 0, n)
	for i, row := range ranked[:n] {
		growth := 0.0
		if row.Growth != nil {
			growth = *row.Growth
		}
		top = append(top, CommodityInsight{
			Rank:                 i + 1,
			Commodity:            row.Description,
			SITCCode:             row.SITCCode,
			CurrentValueMillions: row.CurrentValue,
			MarketSharePercent:   row.SharePercent,
			YoYGrowthPercent:     growth,
			Recommendation:       commodityRecommendation(growth),
		})
	}
	return top
}

// commodityRecommendation maps a growth percentage onto the advisory bands.
// Zero growth (including substituted missing values) reads as MAINTAIN;
// only outright decline triggers REVIEW.
func commodityRecommendation(growth float64) string {
	switch {
	case growth > 100:
		return "HIGH PRIORITY: Scale production and expand market reach"
	case growth > 50:
		return "MEDIUM PRIORITY: Invest in capacity expansion"
	case growth >= 0:
		return "MAINTAIN: Continue current strategy with optimizations"
	default:
		return "REVIEW: Investigate challenges and revise approach"
	}
}
