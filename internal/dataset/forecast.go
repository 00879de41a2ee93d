package dataset

import (
	"log/slog"
)

// Forecast is one row of the upstream ML forecast table. The predictions
// are computed elsewhere and merely passed through the pipeline.
type Forecast struct {
	Country       string
	Current2022   float64
	Predicted2023 float64
	Predicted2024 float64
	Predicted2025 float64
	GrowthPercent float64
	CAGR          float64
	Confidence    float64 // 0-100
	Volatility    float64
}

// LoadForecasts loads the forecast table
func LoadForecasts(logger *slog.Logger, path string) ([]Forecast, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	warnMissingColumns(logger, path, t,
		"country", "current_2022", "predicted_2023", "predicted_2024", "predicted_2025",
		"predicted_growth_percent", "cagr_2022_2025", "confidence_score", "volatility")

	forecasts := make([]Forecast, 0, len(t.rows))
	for _, row := range t.rows {
		forecasts = append(forecasts, Forecast{
			Country:       t.stringCell(row, "country"),
			Current2022:   t.numberCell(row, "current_2022"),
			Predicted2023: t.numberCell(row, "predicted_2023"),
			Predicted2024: t.numberCell(row, "predicted_2024"),
			Predicted2025: t.numberCell(row, "predicted_2025"),
			GrowthPercent: t.numberCell(row, "predicted_growth_percent"),
			CAGR:          t.numberCell(row, "cagr_2022_2025"),
			Confidence:    t.numberCell(row, "confidence_score"),
			Volatility:    t.numberCell(row, "volatility"),
		})
	}

	return forecasts, nil
}
