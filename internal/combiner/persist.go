package combiner

import (
	"context"
	"log/slog"
	"strconv"

	"rwexcli/internal/config"
	apperrors "rwexcli/internal/errors"
	"rwexcli/internal/exporter"
)

// WriteOutputs writes the combined dataset and the three derived summary
// tables to the processed data directory. A write failure is fatal for the
// run and is returned as a storage error.
func WriteOutputs(ctx context.Context, logger *slog.Logger, paths *config.Paths, records []Record) error {
	w := exporter.NewCSVWriter(paths)

	if err := writeCombined(w, paths.CombinedCSV, records); err != nil {
		return apperrors.NewStorageError("failed to write combined dataset", err)
	}
	logger.InfoContext(ctx, "wrote combined dataset",
		slog.String("path", paths.CombinedCSV),
		slog.Int("records", len(records)))

	if err := writeYearly(w, paths.YearlySummaryCSV, YearlySummary(records)); err != nil {
		return apperrors.NewStorageError("failed to write yearly summary", err)
	}
	logger.InfoContext(ctx, "wrote yearly summary", slog.String("path", paths.YearlySummaryCSV))

	if err := writeRegional(w, paths.RegionalSummaryCSV, RegionalSummary(records)); err != nil {
		return apperrors.NewStorageError("failed to write regional analysis", err)
	}
	logger.InfoContext(ctx, "wrote regional analysis", slog.String("path", paths.RegionalSummaryCSV))

	growth := GrowthAnalysis(records)
	if len(growth) > 0 {
		if err := writeGrowth(w, paths.GrowthAnalysisCSV, growth); err != nil {
			return apperrors.NewStorageError("failed to write growth analysis", err)
		}
		logger.InfoContext(ctx, "wrote growth analysis",
			slog.String("path", paths.GrowthAnalysisCSV),
			slog.Int("partners", len(growth)))
	} else {
		logger.WarnContext(ctx, "no partners with multi-year growth data, skipping growth analysis")
	}

	return nil
}

func writeCombined(w *exporter.CSVWriter, path string, records []Record) error {
	headers := []string{
		"Partner Name", "Year", "Transaction_ID", "Region",
		"Export (US$ Thousand)", "Export Partner Share (%)",
		"Export Share in Total Products (%)", "No Of exported HS6 digit Products",
		"Export_Value_USD", "Export_Value_Millions",
		"YoY_Growth_Rate", "YoY_Growth_Absolute",
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.PartnerName,
			strconv.Itoa(r.Year),
			r.TransactionID,
			r.Region,
			exporter.FormatFloat(r.ExportThousand, -1),
			exporter.FormatFloat(r.PartnerShare, -1),
			exporter.FormatFloat(r.ProductShare, -1),
			exporter.FormatFloat(r.ProductCount, -1),
			exporter.FormatFloat(r.ExportValueUSD, -1),
			exporter.FormatFloat(r.ExportValueMillions, -1),
			formatNullable(r.YoYGrowthRate),
			formatNullable(r.YoYGrowthAbs),
		})
	}

	return w.WriteSimpleCSV(path, headers, rows)
}

func writeYearly(w *exporter.CSVWriter, path string, summaries []YearSummary) error {
	headers := []string{"Year", "Total_Exports_M", "Export_Transactions", "Unique_Partners", "Total_Products"}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Year),
			exporter.FormatFloat(s.TotalExportsM, 2),
			exporter.FormatInt(s.Transactions),
			exporter.FormatInt(s.UniquePartners),
			exporter.FormatFloat(s.TotalProducts, 2),
		})
	}

	return w.WriteSimpleCSV(path, headers, rows)
}

func writeRegional(w *exporter.CSVWriter, path string, summaries []RegionSummary) error {
	headers := []string{"Region", "Year", "Export_Value_Millions", "Unique_Partners"}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Region,
			strconv.Itoa(s.Year),
			exporter.FormatFloat(s.ExportsM, 2),
			exporter.FormatInt(s.UniquePartners),
		})
	}

	return w.WriteSimpleCSV(path, headers, rows)
}

func writeGrowth(w *exporter.CSVWriter, path string, analysis []PartnerGrowth) error {
	headers := []string{"Partner Name", "Avg_Growth_Rate", "Growth_Volatility", "Years_of_Data", "First_Year_Value", "Last_Year_Value"}

	rows := make([][]string, 0, len(analysis))
	for _, g := range analysis {
		rows = append(rows, []string{
			g.PartnerName,
			exporter.FormatFloat(g.AvgGrowthRate, 2),
			exporter.FormatFloat(g.GrowthVolatility, 2),
			exporter.FormatInt(g.YearsOfData),
			exporter.FormatFloat(g.FirstYearValue, 2),
			exporter.FormatFloat(g.LastYearValue, 2),
		})
	}

	return w.WriteSimpleCSV(path, headers, rows)
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return exporter.FormatFloat(*v, -1)
}
