package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwexcli/internal/dataset"
)

func floatPtr(v float64) *float64 { return &v }

func commodity(desc string, value float64, growth *float64) dataset.Commodity {
	return dataset.Commodity{
		Description:  desc,
		SITCCode:     "0",
		CurrentValue: value,
		SharePercent: 10,
		Growth:       growth,
	}
}

func TestTopCommodities_SelectionAndRanking(t *testing.T) {
	rows := []dataset.Commodity{
		commodity("Tea", 30, floatPtr(5)),
		commodity("Coffee", 120, floatPtr(15)),
		commodity("Minerals", 90, floatPtr(25)),
		commodity("Hides", 10, floatPtr(2)),
		commodity("Flowers", 60, floatPtr(8)),
		commodity("Cereals", 5, floatPtr(1)),
	}

	top := TopCommodities(rows)
	require.Len(t, top, 5)

	names := make([]string, len(top))
	for i, c := range top {
		names[i] = c.Commodity
		assert.Equal(t, i+1, c.Rank)
	}
	assert.Equal(t, []string{"Coffee", "Minerals", "Flowers", "Tea", "Hides"}, names)
}

func TestTopCommodities_FewerThanFive(t *testing.T) {
	top := TopCommodities([]dataset.Commodity{
		commodity("Coffee", 100, floatPtr(10)),
		commodity("Tea", 50, floatPtr(5)),
	})
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 2, top[1].Rank)
}

func TestTopCommodities_Empty(t *testing.T) {
	assert.Empty(t, TopCommodities(nil))
}

func TestCommodityRecommendation_Bands(t *testing.T) {
	tests := []struct {
		name   string
		growth float64
		want   string
	}{
		{"above high band", 150, "HIGH PRIORITY: Scale production and expand market reach"},
		{"exactly 100", 100, "MEDIUM PRIORITY: Invest in capacity expansion"},
		{"above medium band", 60, "MEDIUM PRIORITY: Invest in capacity expansion"},
		{"exactly 50", 50, "MAINTAIN: Continue current strategy with optimizations"},
		{"small positive", 5, "MAINTAIN: Continue current strategy with optimizations"},
		{"exactly zero", 0, "MAINTAIN: Continue current strategy with optimizations"},
		{"negative", -5, "REVIEW: Investigate challenges and revise approach"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commodityRecommendation(tt.growth))
		})
	}
}

func TestTopCommodities_MissingGrowthReadsAsZero(t *testing.T) {
	top := TopCommodities([]dataset.Commodity{commodity("Coffee", 100, nil)})
	require.Len(t, top, 1)
	assert.Equal(t, 0.0, top[0].YoYGrowthPercent)
	assert.Equal(t, "MAINTAIN: Continue current strategy with optimizations", top[0].Recommendation)
}

func TestTopCommodities_EndToEnd(t *testing.T) {
	top := TopCommodities([]dataset.Commodity{
		commodity("Coffee", 120, floatPtr(150)),
		commodity("Tea", 80, floatPtr(60)),
		commodity("Hides", 50, floatPtr(-5)),
	})
	require.Len(t, top, 3)

	assert.Equal(t, "Coffee", top[0].Commodity)
	assert.Contains(t, top[0].Recommendation, "HIGH PRIORITY")
	assert.Equal(t, "Tea", top[1].Commodity)
	assert.Contains(t, top[1].Recommendation, "MEDIUM PRIORITY")
	assert.Equal(t, "Hides", top[2].Commodity)
	assert.Contains(t, top[2].Recommendation, "REVIEW")
}

func opportunity(desc string, score, growth, volatility, share *float64) dataset.Opportunity {
	return dataset.Opportunity{
		Description: desc,
		SITCCode:    "0",
		Score:       score,
		Growth:      growth,
		Volatility:  volatility,
		MarketShare: share,
	}
}

func TestOpportunityMatrix_TopTenByScore(t *testing.T) {
	var rows []dataset.Opportunity
	for i := 0; i < 12; i++ {
		score := float64(i * 5)
		rows = append(rows, opportunity("commodity", &score, nil, nil, nil))
	}

	matrix := OpportunityMatrix(rows)
	require.Len(t, matrix, 10)
	assert.Equal(t, 55.0, matrix[0].OpportunityScore)
	assert.Equal(t, 10.0, matrix[9].OpportunityScore)
}

func TestRiskLevel_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		volatility *float64
		want       string
	}{
		{"nil reads as maximum risk", nil, "HIGH"},
		{"above 80", floatPtr(81), "HIGH"},
		{"exactly 80", floatPtr(80), "MEDIUM"},
		{"above 40", floatPtr(41), "MEDIUM"},
		{"exactly 40", floatPtr(40), "LOW"},
		{"low volatility", floatPtr(10), "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskLevel(tt.volatility))
		})
	}
}

func TestActionPriority_Thresholds(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  string
	}{
		{"nil reads as zero", nil, "LOW"},
		{"above 60", floatPtr(61), "CRITICAL"},
		{"exactly 60", floatPtr(60), "HIGH"},
		{"above 40", floatPtr(41), "HIGH"},
		{"exactly 40", floatPtr(40), "MEDIUM"},
		{"above 20", floatPtr(21), "MEDIUM"},
		{"exactly 20", floatPtr(20), "LOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actionPriority(tt.score))
		})
	}
}

func TestOpportunityMatrix_NilFieldsSubstituted(t *testing.T) {
	matrix := OpportunityMatrix([]dataset.Opportunity{
		opportunity("Coffee", nil, nil, nil, nil),
	})
	require.Len(t, matrix, 1)

	m := matrix[0]
	assert.Equal(t, 0.0, m.OpportunityScore)
	assert.Equal(t, 0.0, m.GrowthRate)
	assert.Equal(t, 0.0, m.Volatility)
	assert.Equal(t, 0.0, m.MarketShare)
	assert.Equal(t, "HIGH", m.RiskLevel)
	assert.Equal(t, "LOW", m.ActionPriority)
}

func TestDeriveOpportunities(t *testing.T) {
	rows := []dataset.Commodity{
		{Description: "Coffee", SITCCode: "071", CurrentValue: 120, SharePercent: 10, Growth: floatPtr(-40)},
		{Description: "Tea", SITCCode: "074", CurrentValue: 80, SharePercent: 20, Growth: nil},
	}

	derived := DeriveOpportunities(rows)
	require.Len(t, derived, 2)

	// growth*0.5 + share*0.3 + 20
	assert.Equal(t, 3.0, *derived[0].Score)
	assert.Equal(t, 40.0, *derived[0].Volatility)
	assert.Equal(t, -40.0, *derived[0].Growth)

	// Missing growth scores on share alone
	assert.Equal(t, 26.0, *derived[1].Score)
	assert.Equal(t, 0.0, *derived[1].Volatility)
}

func TestMarketTrends_NoGrowthColumn(t *testing.T) {
	trends := MarketTrends(dataset.Quarterly{})

	assert.Equal(t, "increasing", trends.TotalExportsTrend)
	assert.Equal(t, 0.0, trends.GrowthRateAvg)
	assert.Equal(t, "UNKNOWN", trends.VolatilityIndex)
	assert.Equal(t, "Q3", trends.SeasonalPatterns.PeakQuarter)
	assert.Equal(t, []string{"Food and Live Animals", "Agricultural Products"}, trends.SeasonalPatterns.PeakSectors)
}

func TestMarketTrends_VolatilityBands(t *testing.T) {
	tests := []struct {
		name    string
		growth  []*float64
		wantAvg float64
		want    string
	}{
		{"low spread", []*float64{floatPtr(10), floatPtr(30)}, 20, "LOW"},
		{"medium spread", []*float64{floatPtr(10), floatPtr(50)}, 30, "MEDIUM"},
		{"high spread", []*float64{floatPtr(10), floatPtr(90)}, 50, "HIGH"},
		{"column present but empty", []*float64{nil, nil}, 0, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trends := MarketTrends(dataset.Quarterly{HasGrowth: true, Growth: tt.growth})
			assert.Equal(t, tt.wantAvg, trends.GrowthRateAvg)
			assert.Equal(t, tt.want, trends.VolatilityIndex)
		})
	}
}

func TestBuildStrategicMarkets(t *testing.T) {
	tier1 := []dataset.TierMarket{{Country: "United Arab Emirates", AvgGrowthRate: 180.5, LastYearValue: 450.2}}
	tier2 := []dataset.TierMarket{{Country: "Tanzania", AvgGrowthRate: 85.5, LastYearValue: 250.3}}
	tier3 := []dataset.TierMarket{{Country: "Nigeria", AvgGrowthRate: 42.8, LastYearValue: 200.5}}

	markets := BuildStrategicMarkets(tier1, tier2, tier3)

	require.Len(t, markets.Tier1Powerhouses, 1)
	assert.Equal(t, "United Arab Emirates", markets.Tier1Powerhouses[0].Country)
	assert.Equal(t, "Scale & Deepen", markets.Tier1Powerhouses[0].Strategy)
	assert.Equal(t, "HIGH", markets.Tier1Powerhouses[0].Priority)
	assert.Equal(t, 450.2, markets.Tier1Powerhouses[0].Value2022Millions)

	require.Len(t, markets.Tier2Emerging, 1)
	assert.Equal(t, "Rapid Expansion", markets.Tier2Emerging[0].Strategy)
	assert.Equal(t, "MEDIUM", markets.Tier2Emerging[0].Priority)

	require.Len(t, markets.Tier3Untapped, 1)
	assert.Equal(t, "Market Entry", markets.Tier3Untapped[0].Strategy)
	assert.Equal(t, "MEDIUM", markets.Tier3Untapped[0].Priority)
}

func TestBuildStrategicMarkets_EmptyTiers(t *testing.T) {
	markets := BuildStrategicMarkets(nil, nil, nil)
	assert.NotNil(t, markets.Tier1Powerhouses)
	assert.Empty(t, markets.Tier1Powerhouses)
	assert.Empty(t, markets.Tier2Emerging)
	assert.Empty(t, markets.Tier3Untapped)
}
