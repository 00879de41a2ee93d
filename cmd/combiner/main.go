// Command combiner merges the yearly WITS partner-export files into the
// combined dataset plus the yearly, regional and growth summary tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"rwexcli/internal/combiner"
	"rwexcli/internal/config"
	"rwexcli/internal/dataset"
	apperrors "rwexcli/internal/errors"
	"rwexcli/internal/infrastructure"
)

func main() {
	baseDir := flag.String("dir", "", "base directory for data and logs (defaults to working directory)")
	fromYear := flag.Int("from", 2018, "first year of partner files to load")
	toYear := flag.Int("to", 2022, "last year of partner files to load")
	flag.Parse()

	if *fromYear > *toYear {
		fmt.Fprintln(os.Stderr, "invalid year range: -from is after -to")
		os.Exit(1)
	}

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
				FilePath: paths.GetLogPath("combiner.log"),
			},
		}
	}
	if cfg.Logging.Output != "console" && cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("combiner.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.NewRunContext(context.Background())

	logger.InfoContext(ctx, "starting partner data combination",
		slog.String("raw_dir", paths.RawDir),
		slog.Int("from_year", *fromYear),
		slog.Int("to_year", *toYear))

	// Load whatever yearly files exist; a missing year is logged and skipped
	rowsByYear := make(map[int][]dataset.PartnerYear)
	for year := *fromYear; year <= *toYear; year++ {
		rows, err := dataset.LoadPartnerYear(logger, paths.RawDir, year)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeNotFound) {
				logger.WarnContext(ctx, "no partner file for year, skipping",
					slog.Int("year", year))
			} else {
				logger.WarnContext(ctx, "failed to load partner file, skipping",
					slog.Int("year", year),
					slog.String("error", err.Error()))
			}
			continue
		}
		rowsByYear[year] = rows
	}

	c := combiner.New(logger)
	records, err := c.Combine(ctx, rowsByYear)
	if err != nil {
		logger.ErrorContext(ctx, "combination failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := combiner.WriteOutputs(ctx, logger, paths, records); err != nil {
		logger.ErrorContext(ctx, "failed to write outputs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(records)
	logger.InfoContext(ctx, "partner data combination complete",
		slog.Int("records", len(records)))
}

func printSummary(records []combiner.Record) {
	fmt.Println("\nTop export partners (all years, US$ millions):")
	for i, p := range combiner.TopPartners(records, 10) {
		fmt.Printf("  %2d. %-35s %10.1f\n", i+1, p.PartnerName, p.TotalMillions)
	}

	years := combiner.YearlySummary(records)
	fmt.Println("\nYearly totals:")
	for _, y := range years {
		fmt.Printf("  %d: %10.1fM across %d partners\n", y.Year, y.TotalExportsM, y.UniquePartners)
	}
}
