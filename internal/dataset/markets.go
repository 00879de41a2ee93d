package dataset

import (
	"log/slog"
)

// TierMarket is one row of a tier-segmented strategic market table.
// The tables arrive pre-segmented from the upstream WITS analysis.
type TierMarket struct {
	Country       string
	AvgGrowthRate float64
	LastYearValue float64 // most recent year export value, USD millions
}

// Quarterly holds the quarterly trade series used for market trend
// extraction. The growth column is optional in older exports; HasGrowth
// records whether it was present at all.
type Quarterly struct {
	HasGrowth bool
	Growth    []*float64
}

// LoadTierMarkets loads one tier-segmented partner table
func LoadTierMarkets(logger *slog.Logger, path string) ([]TierMarket, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	warnMissingColumns(logger, path, t, "Partner Name", "Avg_Growth_Rate", "Last_Year_Value")

	markets := make([]TierMarket, 0, len(t.rows))
	for _, row := range t.rows {
		markets = append(markets, TierMarket{
			Country:       t.stringCell(row, "Partner Name"),
			AvgGrowthRate: t.numberCell(row, "Avg_Growth_Rate"),
			LastYearValue: t.numberCell(row, "Last_Year_Value"),
		})
	}

	return markets, nil
}

// LoadQuarterly loads the quarterly trade table, keeping only the
// period-over-period growth series the trend extraction needs
func LoadQuarterly(logger *slog.Logger, path string) (Quarterly, error) {
	t, err := readTable(path)
	if err != nil {
		return Quarterly{}, err
	}

	q := Quarterly{HasGrowth: t.hasColumn("QoQ_Growth")}
	if !q.HasGrowth {
		logger.Warn("quarterly table has no QoQ_Growth column, trends will degrade",
			slog.String("path", path))
		return q, nil
	}

	q.Growth = make([]*float64, 0, len(t.rows))
	for _, row := range t.rows {
		q.Growth = append(q.Growth, t.floatCell(row, "QoQ_Growth"))
	}

	return q, nil
}
