package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "rwexcli/internal/errors"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoadCommodities(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "commodities.csv",
		"Commodity_Description,SITC_Code,2024Q3,Share_Percent_Q3,Change_Q3_Q3_Percent\n"+
			"Coffee and substitutes,071,\"1,250.5\",18.2,152.3\n"+
			"Tea and mate,074,80.1,6.5,\n"+
			"Ores,283,50.0,4.1,garbage\n")

	commodities, err := LoadCommodities(testLogger(), path, "2024Q3")
	require.NoError(t, err)
	require.Len(t, commodities, 3)

	assert.Equal(t, "Coffee and substitutes", commodities[0].Description)
	assert.Equal(t, "071", commodities[0].SITCCode)
	assert.Equal(t, 1250.5, commodities[0].CurrentValue)
	assert.Equal(t, 18.2, commodities[0].SharePercent)
	require.NotNil(t, commodities[0].Growth)
	assert.Equal(t, 152.3, *commodities[0].Growth)

	// Blank and non-numeric growth cells coerce to missing, never error
	assert.Nil(t, commodities[1].Growth)
	assert.Nil(t, commodities[2].Growth)
}

func TestLoadCommodities_MissingValueColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "commodities.csv",
		"Commodity_Description,SITC_Code\nCoffee,071\n")

	commodities, err := LoadCommodities(testLogger(), path, "2024Q3")
	require.NoError(t, err)
	require.Len(t, commodities, 1)
	assert.Equal(t, 0.0, commodities[0].CurrentValue)
	assert.Nil(t, commodities[0].Growth)
}

func TestLoadCommodities_FileMissing(t *testing.T) {
	_, err := LoadCommodities(testLogger(), filepath.Join(t.TempDir(), "nope.csv"), "2024Q3")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestLoadOpportunities(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "opportunities.csv",
		"Commodity_Description,SITC_Code,Opportunity_Score,YoY_Growth,Volatility,Market_Share\n"+
			"Coffee,071,85.5,152.3,152.3,18.2\n"+
			"Tea,074,,,,\n")

	opportunities, err := LoadOpportunities(testLogger(), path)
	require.NoError(t, err)
	require.Len(t, opportunities, 2)

	require.NotNil(t, opportunities[0].Score)
	assert.Equal(t, 85.5, *opportunities[0].Score)

	assert.Nil(t, opportunities[1].Score)
	assert.Nil(t, opportunities[1].Volatility)
}

func TestLoadTierMarkets(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "tier1.csv",
		"Partner Name,Avg_Growth_Rate,Last_Year_Value\n"+
			"United Arab Emirates,180.5,450.2\n"+
			"Ethiopia(excludes Eritrea),145.8,280.3\n")

	markets, err := LoadTierMarkets(testLogger(), path)
	require.NoError(t, err)
	require.Len(t, markets, 2)
	assert.Equal(t, "United Arab Emirates", markets[0].Country)
	assert.Equal(t, 180.5, markets[0].AvgGrowthRate)
	assert.Equal(t, 280.3, markets[1].LastYearValue)
}

func TestLoadForecasts(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "forecasts.csv",
		"country,current_2022,predicted_2023,predicted_2024,predicted_2025,predicted_growth_percent,cagr_2022_2025,confidence_score,volatility\n"+
			"Kenya,100,110,125,140,40,11.9,85,12.5\n")

	forecasts, err := LoadForecasts(testLogger(), path)
	require.NoError(t, err)
	require.Len(t, forecasts, 1)

	f := forecasts[0]
	assert.Equal(t, "Kenya", f.Country)
	assert.Equal(t, 100.0, f.Current2022)
	assert.Equal(t, 140.0, f.Predicted2025)
	assert.Equal(t, 40.0, f.GrowthPercent)
	assert.Equal(t, 85.0, f.Confidence)
}

func TestLoadQuarterly(t *testing.T) {
	dir := t.TempDir()

	t.Run("with_growth_column", func(t *testing.T) {
		path := writeCSV(t, dir, "quarterly.csv",
			"Quarter,Total,QoQ_Growth\n2024Q1,100,\n2024Q2,120,20\n2024Q3,150,25\n")

		q, err := LoadQuarterly(testLogger(), path)
		require.NoError(t, err)
		assert.True(t, q.HasGrowth)
		require.Len(t, q.Growth, 3)
		assert.Nil(t, q.Growth[0])
		assert.Equal(t, 20.0, *q.Growth[1])
	})

	t.Run("without_growth_column", func(t *testing.T) {
		path := writeCSV(t, dir, "quarterly_old.csv",
			"Quarter,Total\n2024Q1,100\n")

		q, err := LoadQuarterly(testLogger(), path)
		require.NoError(t, err)
		assert.False(t, q.HasGrowth)
		assert.Empty(t, q.Growth)
	})
}

func TestLoadPartnerYearCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "WITS-Partner_2022.xlsx - Partner.csv",
		"Partner Name,Export (US$ Thousand),Export Partner Share (%),Export Share in Total Products (%),No Of exported HS6 digit Products\n"+
			"  Kenya  ,\"150,000\",12.5,8.1,45\n"+
			"Somewhere,,,,\n")

	partners, err := LoadPartnerYearCSV(testLogger(), path, 2022)
	require.NoError(t, err)
	require.Len(t, partners, 2)

	assert.Equal(t, "Kenya", partners[0].PartnerName)
	assert.Equal(t, 2022, partners[0].Year)
	require.NotNil(t, partners[0].ExportThousand)
	assert.Equal(t, 150000.0, *partners[0].ExportThousand)

	// Row without an export value survives loading; the combiner drops it
	assert.Nil(t, partners[1].ExportThousand)
}

func TestLoadPartnerYearWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "WITS-Partner_2021.xlsx")

	f := excelize.NewFile()
	sheet := "Partner"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	rows := [][]interface{}{
		{ColPartnerName, ColExportValue, ColPartnerShare, ColProductShare, ColProductCount},
		{"Uganda", 98000, 9.5, 6.2, 38},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	partners, err := LoadPartnerYearWorkbook(testLogger(), path, 2021)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "Uganda", partners[0].PartnerName)
	require.NotNil(t, partners[0].ExportThousand)
	assert.Equal(t, 98000.0, *partners[0].ExportThousand)
}

func TestLoadPartnerYear_PrefersWorkbookThenCSV(t *testing.T) {
	dir := t.TempDir()

	// Only CSV present: loads from CSV
	writeCSV(t, dir, "WITS-Partner_2020.xlsx - Partner.csv",
		fmt.Sprintf("%s,%s\nTanzania,55000\n", ColPartnerName, ColExportValue))

	partners, err := LoadPartnerYear(testLogger(), dir, 2020)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "Tanzania", partners[0].PartnerName)

	// Neither present: NOT_FOUND
	_, err = LoadPartnerYear(testLogger(), dir, 1999)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestParseNullableFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected *float64
	}{
		{"", nil},
		{"N/A", nil},
		{"12.5", floatPtr(12.5)},
		{"1,250,000", floatPtr(1250000)},
		{"-5", floatPtr(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseNullableFloat(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
