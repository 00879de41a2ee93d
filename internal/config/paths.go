package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: raw spreadsheets
// come in under data/raw, combined tables land in data/processed, and the
// dashboard reads everything under data/insights.
type Paths struct {
	BaseDir      string
	DataDir      string
	RawDir       string
	ProcessedDir string
	InsightsDir  string
	LogsDir      string

	// Well-known output files
	CombinedCSV        string
	YearlySummaryCSV   string
	RegionalSummaryCSV string
	GrowthAnalysisCSV  string
	InsightsJSON       string
}

// GetPaths returns the application paths rooted at the given base directory.
// An empty base resolves to the current working directory, so the tools can
// be run from the project root without any configuration.
func GetPaths(base string) (*Paths, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		base = wd
	}

	dataDir := filepath.Join(base, "data")
	insightsDir := filepath.Join(dataDir, "insights")

	return &Paths{
		BaseDir:      base,
		DataDir:      dataDir,
		RawDir:       filepath.Join(dataDir, "raw"),
		ProcessedDir: filepath.Join(dataDir, "processed"),
		InsightsDir:  insightsDir,
		LogsDir:      filepath.Join(base, "logs"),

		CombinedCSV:        filepath.Join(dataDir, "processed", "rwanda_export_partners_combined.csv"),
		YearlySummaryCSV:   filepath.Join(dataDir, "processed", "rwanda_exports_yearly_summary.csv"),
		RegionalSummaryCSV: filepath.Join(dataDir, "processed", "rwanda_exports_regional_analysis.csv"),
		GrowthAnalysisCSV:  filepath.Join(dataDir, "processed", "rwanda_exports_growth_analysis.csv"),
		InsightsJSON:       filepath.Join(insightsDir, "export_insights.json"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.RawDir, p.ProcessedDir, p.InsightsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetRawPath returns the full path for a file in the raw data directory
func (p *Paths) GetRawPath(filename string) string {
	return filepath.Join(p.RawDir, filename)
}

// GetProcessedPath returns the full path for a file in the processed directory
func (p *Paths) GetProcessedPath(filename string) string {
	return filepath.Join(p.ProcessedDir, filename)
}

// GetInsightsPath returns the full path for a file in the insights directory
func (p *Paths) GetInsightsPath(filename string) string {
	return filepath.Join(p.InsightsDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
