// Command insights extracts the export-insights document from the cleaned
// analysis tables and writes the JSON artifact plus the per-section CSV
// package for the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"rwexcli/internal/config"
	"rwexcli/internal/dataset"
	apperrors "rwexcli/internal/errors"
	"rwexcli/internal/exporter"
	"rwexcli/internal/infrastructure"
	"rwexcli/internal/insights"
)

func main() {
	baseDir := flag.String("dir", "", "base directory for data and logs (defaults to working directory)")
	commoditiesPath := flag.String("commodities", "", "commodity table CSV (defaults to data/raw/2024Q3_ExportsCommodity.csv)")
	opportunitiesPath := flag.String("opportunities", "", "pre-scored opportunity table CSV (derived from commodities when absent)")
	quarterlyPath := flag.String("quarterly", "", "quarterly trade table CSV (defaults to data/processed/analysis_ready_total_trade_world_updated.csv)")
	tier1Path := flag.String("tier1", "", "tier 1 powerhouse markets CSV")
	tier2Path := flag.String("tier2", "", "tier 2 emerging markets CSV")
	tier3Path := flag.String("tier3", "", "tier 3 untapped markets CSV")
	forecastPath := flag.String("forecast", "", "country forecast table CSV (defaults to data/processed/rwanda_export_forecasts.csv)")
	flag.Parse()

	paths, err := config.GetPaths(*baseDir)
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("insights.log"),
			},
			Report: config.ReportConfig{
				Period:          "Q3 2024",
				AnalysisVersion: "1.0",
				BaseFilename:    "export_insights",
				ValueColumn:     "2024Q3",
			},
		}
	}
	if cfg.Logging.Output != "console" && cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("insights.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.NewRunContext(context.Background())

	applyDefault(commoditiesPath, paths.GetRawPath(cfg.Report.ValueColumn+"_ExportsCommodity.csv"))
	applyDefault(quarterlyPath, paths.GetProcessedPath("analysis_ready_total_trade_world_updated.csv"))
	applyDefault(tier1Path, paths.GetInsightsPath(cfg.Report.BaseFilename+"_strategic_tier1_powerhouses.csv"))
	applyDefault(tier2Path, paths.GetInsightsPath(cfg.Report.BaseFilename+"_strategic_tier2_emerging.csv"))
	applyDefault(tier3Path, paths.GetInsightsPath(cfg.Report.BaseFilename+"_strategic_tier3_untapped.csv"))
	applyDefault(forecastPath, paths.GetProcessedPath("rwanda_export_forecasts.csv"))

	logger.InfoContext(ctx, "starting insights extraction",
		slog.String("report_period", cfg.Report.Period),
		slog.String("commodities", *commoditiesPath))

	b := insights.NewBuilder(cfg.Report.Period, cfg.Report.AnalysisVersion)
	loaded := 0

	commodities, err := dataset.LoadCommodities(logger, *commoditiesPath, cfg.Report.ValueColumn)
	if err != nil {
		logger.WarnContext(ctx, "commodity table unavailable, skipping commodity sections",
			slog.String("error", err.Error()))
	} else {
		loaded++
		b.SetTopOpportunities(commodities)
	}

	// A pre-scored table wins; otherwise score the commodities directly
	if *opportunitiesPath != "" {
		opportunities, err := dataset.LoadOpportunities(logger, *opportunitiesPath)
		if err != nil {
			logger.WarnContext(ctx, "opportunity table unreadable, deriving scores from commodities",
				slog.String("error", err.Error()))
			b.SetOpportunityMatrix(insights.DeriveOpportunities(commodities))
		} else {
			loaded++
			b.SetOpportunityMatrix(opportunities)
		}
	} else {
		b.SetOpportunityMatrix(insights.DeriveOpportunities(commodities))
	}

	if quarterly, err := dataset.LoadQuarterly(logger, *quarterlyPath); err != nil {
		logger.WarnContext(ctx, "quarterly table unavailable, trend section degrades",
			slog.String("error", err.Error()))
	} else {
		loaded++
		b.SetMarketTrends(quarterly)
	}

	tier1 := loadTier(ctx, logger, *tier1Path, "tier1", &loaded)
	tier2 := loadTier(ctx, logger, *tier2Path, "tier2", &loaded)
	tier3 := loadTier(ctx, logger, *tier3Path, "tier3", &loaded)
	b.SetStrategicMarkets(tier1, tier2, tier3)

	if err := b.SetCatalogs(); err != nil {
		logger.ErrorContext(ctx, "failed to load catalogs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if forecasts, err := dataset.LoadForecasts(logger, *forecastPath); err != nil {
		logger.WarnContext(ctx, "forecast table unavailable, predictions section empty",
			slog.String("error", err.Error()))
	} else {
		loaded++
		b.SetPredictions(forecasts)
	}

	if loaded == 0 {
		logger.ErrorContext(ctx, "no usable input tables found")
		os.Exit(1)
	}

	doc := b.Build()

	if err := insights.WriteJSON(ctx, logger, paths.InsightsJSON, doc); err != nil {
		logger.ErrorContext(ctx, "failed to write insights JSON", slog.String("error", err.Error()))
		os.Exit(1)
	}

	w := exporter.NewCSVWriter(paths)
	written, err := insights.WriteCSVPackage(ctx, logger, w, cfg.Report.BaseFilename, doc)
	if err != nil {
		logger.ErrorContext(ctx, "failed to write CSV package", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(doc, written)
	logger.InfoContext(ctx, "insights extraction complete",
		slog.Int("csv_files", len(written)))
}

func applyDefault(value *string, fallback string) {
	if *value == "" {
		*value = fallback
	}
}

func loadTier(ctx context.Context, logger *slog.Logger, path, name string, loaded *int) []dataset.TierMarket {
	rows, err := dataset.LoadTierMarkets(logger, path)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
			logger.WarnContext(ctx, "tier table missing, tier stays empty",
				slog.String("tier", name))
		} else {
			logger.WarnContext(ctx, "tier table unreadable, tier stays empty",
				slog.String("tier", name),
				slog.String("error", err.Error()))
		}
		return nil
	}
	*loaded++
	return rows
}

func printSummary(doc *insights.Document, written []string) {
	stats := insights.Stats(doc)

	fmt.Println("\nInsights extraction summary:")
	fmt.Printf("  Top opportunities:     %d\n", stats.TotalOpportunities)
	fmt.Printf("  High priority policies: %d\n", stats.HighPriorityPolicies)
	fmt.Printf("  Youth/SME sectors:     %d\n", stats.YouthSMESectors)
	fmt.Printf("  Strategic markets:     %d\n", stats.StrategicMarkets)
	if stats.ForecastedCountries > 0 {
		fmt.Printf("  Forecasted countries:  %d (%.1fM predicted for 2025)\n",
			stats.ForecastedCountries, stats.Predicted2025Total)
	}
	fmt.Printf("  CSV files written:     %d\n", len(written))
}
