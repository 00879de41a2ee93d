package insights

import (
	"time"

	"rwexcli/internal/dataset"
)

// Builder assembles an insights document section by section. All state lives
// in the document itself; sections can be set in any order and each call
// replaces the section wholesale.
type Builder struct {
	doc Document
}

// NewBuilder starts a document stamped with the run metadata. Sections that
// are never set stay at their empty values, so a partial build still yields
// a document with every top-level key.
func NewBuilder(reportPeriod, analysisVersion string) *Builder {
	return &Builder{doc: Document{
		Metadata: Metadata{
			GeneratedAt:     time.Now().Format(time.RFC3339),
			ReportPeriod:    reportPeriod,
			AnalysisVersion: analysisVersion,
		},
		TopOpportunities:      []CommodityInsight{},
		OpportunityMatrix:     []OpportunityInsight{},
		MarketTrends:          MarketTrends(dataset.Quarterly{}),
		PolicyRecommendations: []PolicyRecommendation{},
		YouthSMEOpportunities: []YouthSMEOpportunity{},
		StrategicMarkets: StrategicMarkets{
			Tier1Powerhouses: []StrategicMarket{},
			Tier2Emerging:    []StrategicMarket{},
			Tier3Untapped:    []StrategicMarket{},
		},
	}}
}

// SetTopOpportunities fills the ranked commodity section
func (b *Builder) SetTopOpportunities(rows []dataset.Commodity) *Builder {
	b.doc.TopOpportunities = TopCommodities(rows)
	return b
}

// SetOpportunityMatrix fills the scored opportunity section
func (b *Builder) SetOpportunityMatrix(rows []dataset.Opportunity) *Builder {
	b.doc.OpportunityMatrix = OpportunityMatrix(rows)
	return b
}

// SetMarketTrends fills the quarterly trend section
func (b *Builder) SetMarketTrends(q dataset.Quarterly) *Builder {
	b.doc.MarketTrends = MarketTrends(q)
	return b
}

// SetStrategicMarkets fills the three-tier market section
func (b *Builder) SetStrategicMarkets(tier1, tier2, tier3 []dataset.TierMarket) *Builder {
	b.doc.StrategicMarkets = BuildStrategicMarkets(tier1, tier2, tier3)
	return b
}

// SetCatalogs loads the embedded policy and youth/SME catalogs into the
// document. Fails only if the embedded data is unreadable.
func (b *Builder) SetCatalogs() error {
	policies, err := PolicyCatalog()
	if err != nil {
		return err
	}
	opportunities, err := YouthSMECatalog()
	if err != nil {
		return err
	}
	b.doc.PolicyRecommendations = policies
	b.doc.YouthSMEOpportunities = opportunities
	return nil
}

// SetPredictions fills the optional forecast section
func (b *Builder) SetPredictions(rows []dataset.Forecast) *Builder {
	b.doc.Predictions = ForecastOutlook(rows)
	return b
}

// Build finalizes and returns the document
func (b *Builder) Build() *Document {
	doc := b.doc
	return &doc
}

// Stats computes the quick rollup for a finished document
func Stats(doc *Document) SummaryStats {
	stats := SummaryStats{
		TotalOpportunities: len(doc.TopOpportunities),
		YouthSMESectors:    len(doc.YouthSMEOpportunities),
		StrategicMarkets: len(doc.StrategicMarkets.Tier1Powerhouses) +
			len(doc.StrategicMarkets.Tier2Emerging) +
			len(doc.StrategicMarkets.Tier3Untapped),
	}
	for _, p := range doc.PolicyRecommendations {
		if p.Priority == "HIGH" {
			stats.HighPriorityPolicies++
		}
	}
	if s := doc.Predictions.Summary; s != nil {
		stats.ForecastedCountries = s.TotalCountries
		stats.Predicted2025Total = s.TotalPredicted2025
	}
	return stats
}
