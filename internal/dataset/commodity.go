package dataset

import (
	"log/slog"
)

// Commodity is one row of the quarterly commodity export table.
// Growth is nullable: the source leaves it blank for commodities without a
// comparable prior-year quarter.
type Commodity struct {
	Description  string
	SITCCode     string
	CurrentValue float64 // current-period value, USD millions
	SharePercent float64
	Growth       *float64 // period-over-period percent change
}

// Opportunity is one row of the scored opportunity analysis table.
// All metrics are nullable; the extractor substitutes documented defaults.
type Opportunity struct {
	Description string
	SITCCode    string
	Score       *float64
	Growth      *float64
	Volatility  *float64
	MarketShare *float64
}

// LoadCommodities loads the commodity export table. The current-period value
// column is named after the reporting quarter (e.g. "2024Q3"), so it is
// passed in rather than hard-coded.
func LoadCommodities(logger *slog.Logger, path, valueColumn string) ([]Commodity, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	warnMissingColumns(logger, path, t,
		"Commodity_Description", "SITC_Code", valueColumn, "Share_Percent_Q3", "Change_Q3_Q3_Percent")

	commodities := make([]Commodity, 0, len(t.rows))
	for _, row := range t.rows {
		commodities = append(commodities, Commodity{
			Description:  t.stringCell(row, "Commodity_Description"),
			SITCCode:     t.stringCell(row, "SITC_Code"),
			CurrentValue: t.numberCell(row, valueColumn),
			SharePercent: t.numberCell(row, "Share_Percent_Q3"),
			Growth:       t.floatCell(row, "Change_Q3_Q3_Percent"),
		})
	}

	return commodities, nil
}

// LoadOpportunities loads the scored opportunity analysis table
func LoadOpportunities(logger *slog.Logger, path string) ([]Opportunity, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	warnMissingColumns(logger, path, t,
		"Commodity_Description", "SITC_Code", "Opportunity_Score", "YoY_Growth", "Volatility", "Market_Share")

	opportunities := make([]Opportunity, 0, len(t.rows))
	for _, row := range t.rows {
		opportunities = append(opportunities, Opportunity{
			Description: t.stringCell(row, "Commodity_Description"),
			SITCCode:    t.stringCell(row, "SITC_Code"),
			Score:       t.floatCell(row, "Opportunity_Score"),
			Growth:      t.floatCell(row, "YoY_Growth"),
			Volatility:  t.floatCell(row, "Volatility"),
			MarketShare: t.floatCell(row, "Market_Share"),
		})
	}

	return opportunities, nil
}
