package insights

import "rwexcli/internal/dataset"

// Tier strategies and priorities are fixed by the market classification:
// powerhouses get deepening at high priority, the other two tiers get
// expansion plays at medium priority.
const (
	tier1Strategy = "Scale & Deepen"
	tier2Strategy = "Rapid Expansion"
	tier3Strategy = "Market Entry"
)

// BuildStrategicMarkets maps the three pre-segmented tier tables onto the
// strategic markets section, attaching each tier's strategy and priority
func BuildStrategicMarkets(tier1, tier2, tier3 []dataset.TierMarket) StrategicMarkets {
	return StrategicMarkets{
		Tier1Powerhouses: tierMarkets(tier1, tier1Strategy, "HIGH"),
		Tier2Emerging:    tierMarkets(tier2, tier2Strategy, "MEDIUM"),
		Tier3Untapped:    tierMarkets(tier3, tier3Strategy, "MEDIUM"),
	}
}

func tierMarkets(rows []dataset.TierMarket, strategy, priority string) []StrategicMarket {
	markets := make([]StrategicMarket, 0, len(rows))
	for _, row := range rows {
		markets = append(markets, StrategicMarket{
			Country:           row.Country,
			GrowthRate:        row.AvgGrowthRate,
			Value2022Millions: row.LastYearValue,
			Strategy:          strategy,
			Priority:          priority,
		})
	}
	return markets
}
