package insights

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwexcli/internal/config"
	apperrors "rwexcli/internal/errors"
	"rwexcli/internal/exporter"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWriteJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "insights", "export_insights.json")
	doc := buildTestDocument(t)

	require.NoError(t, WriteJSON(context.Background(), testLogger(), path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Two-space indentation
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"metadata\""))

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *doc, decoded)
}

func TestWriteJSON_RejectsInvalidDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "export_insights.json")

	doc := buildTestDocument(t)
	doc.OpportunityMatrix[0].ActionPriority = "URGENT"

	err := WriteJSON(context.Background(), testLogger(), path, doc)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteCSVPackage(t *testing.T) {
	tmpDir := t.TempDir()
	paths, err := config.GetPaths(tmpDir)
	require.NoError(t, err)

	doc := buildTestDocument(t)
	w := exporter.NewCSVWriter(paths)

	written, err := WriteCSVPackage(context.Background(), testLogger(), w, "export_insights", doc)
	require.NoError(t, err)

	// tier2/tier3 are empty and skipped; emerging forecasts are empty too
	assert.ElementsMatch(t, []string{
		"export_insights_opportunities.csv",
		"export_insights_opportunity_matrix.csv",
		"export_insights_policy_recommendations.csv",
		"export_insights_youth_sme_opportunities.csv",
		"export_insights_strategic_tier1_powerhouses.csv",
		"export_insights_forecast_top15.csv",
		"export_insights_forecast_high_growth.csv",
	}, written)

	for _, name := range written {
		_, err := os.Stat(paths.GetInsightsPath(name))
		assert.NoError(t, err, name)
	}

	// Skipped sections leave no placeholder files
	_, err = os.Stat(paths.GetInsightsPath("export_insights_strategic_tier2_emerging.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCSVPackage_ColumnOrderAndListCells(t *testing.T) {
	tmpDir := t.TempDir()
	paths, err := config.GetPaths(tmpDir)
	require.NoError(t, err)

	doc := buildTestDocument(t)
	w := exporter.NewCSVWriter(paths)

	_, err = WriteCSVPackage(context.Background(), testLogger(), w, "export_insights", doc)
	require.NoError(t, err)

	data, err := os.ReadFile(paths.GetInsightsPath("export_insights_policy_recommendations.csv"))
	require.NoError(t, err)
	content := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")

	lines := strings.Split(content, "\n")
	assert.Equal(t,
		"priority,area,recommendation,rationale,target_stakeholders,timeline,expected_impact",
		lines[0])

	// Stakeholder lists flatten to a comma-joined cell
	assert.Contains(t, content, `"Ministry of Agriculture, Farmer Cooperatives"`)

	opps, err := os.ReadFile(paths.GetInsightsPath("export_insights_opportunities.csv"))
	require.NoError(t, err)
	oppLines := strings.Split(strings.TrimPrefix(string(opps), "\xEF\xBB\xBF"), "\n")
	assert.Equal(t,
		"rank,commodity,sitc_code,current_value_millions,market_share_percent,yoy_growth_percent,recommendation",
		oppLines[0])
}

func TestWriteCSVPackage_NoForecastFilesWithoutPredictions(t *testing.T) {
	tmpDir := t.TempDir()
	paths, err := config.GetPaths(tmpDir)
	require.NoError(t, err)

	b := NewBuilder("Q3 2024", "1.0")
	require.NoError(t, b.SetCatalogs())
	doc := b.Build()

	w := exporter.NewCSVWriter(paths)
	written, err := WriteCSVPackage(context.Background(), testLogger(), w, "export_insights", doc)
	require.NoError(t, err)

	for _, name := range written {
		assert.NotContains(t, name, "forecast")
	}
}
