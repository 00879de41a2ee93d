// Package insights extracts the structured export-insights document from the
// cleaned analysis tables: top commodities, an opportunity-scored matrix,
// market trends, three-tier strategic markets, the policy and youth/SME
// catalogs, and the optional forecast outlook. The serialized document is the
// dashboard's sole source of truth.
package insights

import "encoding/json"

// Metadata describes one extraction run
type Metadata struct {
	GeneratedAt     string `json:"generated_at" validate:"required"`
	ReportPeriod    string `json:"report_period" validate:"required"`
	AnalysisVersion string `json:"analysis_version" validate:"required"`
}

// CommodityInsight is one ranked entry in the top-opportunities list
type CommodityInsight struct {
	Rank                 int     `json:"rank" validate:"min=1"`
	Commodity            string  `json:"commodity" validate:"required"`
	SITCCode             string  `json:"sitc_code"`
	CurrentValueMillions float64 `json:"current_value_millions"`
	MarketSharePercent   float64 `json:"market_share_percent"`
	YoYGrowthPercent     float64 `json:"yoy_growth_percent"`
	Recommendation       string  `json:"recommendation" validate:"required"`
}

// OpportunityInsight is one row of the opportunity matrix
type OpportunityInsight struct {
	Commodity        string  `json:"commodity" validate:"required"`
	SITCCode         string  `json:"sitc_code"`
	OpportunityScore float64 `json:"opportunity_score"`
	GrowthRate       float64 `json:"growth_rate"`
	Volatility       float64 `json:"volatility"`
	MarketShare      float64 `json:"market_share"`
	RiskLevel        string  `json:"risk_level" validate:"oneof=LOW MEDIUM HIGH"`
	ActionPriority   string  `json:"action_priority" validate:"oneof=LOW MEDIUM HIGH CRITICAL"`
}

// SeasonalPatterns is the fixed seasonal summary inside market trends
type SeasonalPatterns struct {
	PeakQuarter string   `json:"peak_quarter"`
	PeakSectors []string `json:"peak_sectors"`
}

// TrendInsight summarizes quarterly market behavior
type TrendInsight struct {
	TotalExportsTrend string           `json:"total_exports_trend"`
	GrowthRateAvg     float64          `json:"growth_rate_avg"`
	SeasonalPatterns  SeasonalPatterns `json:"seasonal_patterns"`
	VolatilityIndex   string           `json:"volatility_index"`
}

// StrategicMarket is one country in a strategic tier
type StrategicMarket struct {
	Country           string  `json:"country" validate:"required"`
	GrowthRate        float64 `json:"growth_rate"`
	Value2022Millions float64 `json:"value_2022_millions"`
	Strategy          string  `json:"strategy" validate:"required"`
	Priority          string  `json:"priority" validate:"oneof=HIGH MEDIUM"`
}

// StrategicMarkets holds the three-tier market classification
type StrategicMarkets struct {
	Tier1Powerhouses []StrategicMarket `json:"tier1_powerhouses" validate:"dive"`
	Tier2Emerging    []StrategicMarket `json:"tier2_emerging" validate:"dive"`
	Tier3Untapped    []StrategicMarket `json:"tier3_untapped" validate:"dive"`
}

// PolicyRecommendation is one entry of the policy catalog. The later catalog
// revisions carry richer planning fields; they stay optional so the leaner
// entries remain valid.
type PolicyRecommendation struct {
	Priority           string   `json:"priority" yaml:"priority" validate:"required"`
	Area               string   `json:"area" yaml:"area" validate:"required"`
	Recommendation     string   `json:"recommendation" yaml:"recommendation" validate:"required"`
	Rationale          string   `json:"rationale" yaml:"rationale"`
	TargetStakeholders []string `json:"target_stakeholders" yaml:"target_stakeholders"`
	Timeline           string   `json:"timeline" yaml:"timeline"`
	ExpectedImpact     string   `json:"expected_impact" yaml:"expected_impact"`

	Category        string   `json:"category,omitempty" yaml:"category"`
	EvidenceBase    string   `json:"evidence_base,omitempty" yaml:"evidence_base"`
	SpecificActions []string `json:"specific_actions,omitempty" yaml:"specific_actions"`
	EstimatedBudget string   `json:"estimated_budget,omitempty" yaml:"estimated_budget"`
	SuccessMetrics  []string `json:"success_metrics,omitempty" yaml:"success_metrics"`
	Risks           string   `json:"risks,omitempty" yaml:"risks"`
	Mitigation      string   `json:"mitigation,omitempty" yaml:"mitigation"`
}

// YouthSMEOpportunity is one entry of the youth and SME opportunity catalog
type YouthSMEOpportunity struct {
	Sector             string   `json:"sector" yaml:"sector" validate:"required"`
	Opportunity        string   `json:"opportunity" yaml:"opportunity" validate:"required"`
	InvestmentRequired string   `json:"investment_required" yaml:"investment_required"`
	SkillsNeeded       []string `json:"skills_needed" yaml:"skills_needed"`
	PotentialRevenue   string   `json:"potential_revenue" yaml:"potential_revenue"`
	MarketDemand       string   `json:"market_demand" yaml:"market_demand"`
	SupportAvailable   string   `json:"support_available" yaml:"support_available"`
}

// ForecastInsight is one country forecast with its derived recommendation.
// Rank is only assigned in the top-forecasts list.
type ForecastInsight struct {
	Rank                  int     `json:"rank,omitempty"`
	Country               string  `json:"country" validate:"required"`
	Current2022Millions   float64 `json:"current_2022_millions"`
	Predicted2023Millions float64 `json:"predicted_2023_millions"`
	Predicted2024Millions float64 `json:"predicted_2024_millions"`
	Predicted2025Millions float64 `json:"predicted_2025_millions"`
	GrowthPercent         float64 `json:"growth_percent"`
	CAGR2022To2025        float64 `json:"cagr_2022_2025"`
	ConfidenceScore       float64 `json:"confidence_score"`
	Volatility            float64 `json:"volatility"`
	Recommendation        string  `json:"recommendation" validate:"required"`
}

// ForecastSummary aggregates the forecast table
type ForecastSummary struct {
	TotalCountries        int     `json:"total_countries"`
	TotalPredicted2025    float64 `json:"total_predicted_2025"`
	TotalCurrent2022      float64 `json:"total_current_2022"`
	OverallGrowthPercent  float64 `json:"overall_growth_percent"`
	AvgConfidence         float64 `json:"avg_confidence"`
	HighConfidenceMarkets int     `json:"high_confidence_markets"`
}

// ForecastTier is one of the independently computed forecast tiers
type ForecastTier struct {
	Count              int      `json:"count"`
	TotalPredicted2025 float64  `json:"total_value_2025"`
	Countries          []string `json:"countries"`
}

// TierClassification groups the three forecast tiers. Membership rules are
// independent, so a country can appear in several tiers or in none.
type TierClassification struct {
	TierA ForecastTier `json:"tier_a_priority"`
	TierB ForecastTier `json:"tier_b_growth"`
	TierC ForecastTier `json:"tier_c_emerging"`
}

// Predictions is the optional forecast section. The zero value serializes as
// an empty object; a populated section always carries all five keys.
type Predictions struct {
	Summary               *ForecastSummary    `json:"summary"`
	TopForecasts          []ForecastInsight   `json:"top_forecasts" validate:"dive"`
	HighGrowthMarkets     []ForecastInsight   `json:"high_growth_markets" validate:"dive"`
	EmergingOpportunities []ForecastInsight   `json:"emerging_opportunities" validate:"dive"`
	TierClassification    *TierClassification `json:"tier_classifications"`
}

// Empty reports whether the forecast section carries any data
func (p Predictions) Empty() bool {
	return p.Summary == nil
}

// MarshalJSON renders an empty section as {} so the predictions key is
// always present in the document without null-valued fields inside it
func (p Predictions) MarshalJSON() ([]byte, error) {
	if p.Empty() {
		return []byte("{}"), nil
	}
	type alias Predictions
	return json.Marshal(alias(p))
}

// Document is the aggregate insights record. It is constructed once per
// extraction run and immediately serialized; all eight top-level keys are
// always present.
type Document struct {
	Metadata              Metadata               `json:"metadata"`
	TopOpportunities      []CommodityInsight     `json:"top_opportunities" validate:"dive"`
	OpportunityMatrix     []OpportunityInsight   `json:"opportunity_matrix" validate:"dive"`
	MarketTrends          TrendInsight           `json:"market_trends"`
	StrategicMarkets      StrategicMarkets       `json:"strategic_markets"`
	PolicyRecommendations []PolicyRecommendation `json:"policy_recommendations" validate:"dive"`
	YouthSMEOpportunities []YouthSMEOpportunity  `json:"youth_sme_opportunities" validate:"dive"`
	Predictions           Predictions            `json:"predictions"`
}

// SummaryStats is the quick rollup printed at the end of a run
type SummaryStats struct {
	TotalOpportunities   int     `json:"total_opportunities"`
	HighPriorityPolicies int     `json:"high_priority_policies"`
	YouthSMESectors      int     `json:"youth_sme_sectors"`
	StrategicMarkets     int     `json:"strategic_markets"`
	ForecastedCountries  int     `json:"forecasted_countries,omitempty"`
	Predicted2025Total   float64 `json:"predicted_2025_total,omitempty"`
}
