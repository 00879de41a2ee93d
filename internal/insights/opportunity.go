package insights

import (
	"math"
	"sort"

	"rwexcli/internal/dataset"
)

const opportunityMatrixCount = 10

// OpportunityMatrix ranks opportunities by score and keeps the top ten, each
// annotated with a risk level and an action priority. A missing volatility
// reads as maximum risk; a missing score as zero priority.
func OpportunityMatrix(rows []dataset.Opportunity) []OpportunityInsight {
	ranked := make([]dataset.Opportunity, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return zeroIfNil(ranked[i].Score) > zeroIfNil(ranked[j].Score)
	})

	n := opportunityMatrixCount
	if n > len(ranked) {
		n = len(ranked)
	}

	matrix := make([]OpportunityInsight, 0, n)
	for _, row := range ranked[:n] {
		matrix = append(matrix, OpportunityInsight{
			Commodity:        row.Description,
			SITCCode:         row.SITCCode,
			OpportunityScore: zeroIfNil(row.Score),
			GrowthRate:       zeroIfNil(row.Growth),
			Volatility:       zeroIfNil(row.Volatility),
			MarketShare:      zeroIfNil(row.MarketShare),
			RiskLevel:        riskLevel(row.Volatility),
			ActionPriority:   actionPriority(row.Score),
		})
	}
	return matrix
}

// riskLevel assesses risk from volatility. An unknown volatility is treated
// as 100, the riskiest reading.
func riskLevel(volatility *float64) string {
	v := 100.0
	if volatility != nil {
		v = *volatility
	}
	switch {
	case v > 80:
		return "HIGH"
	case v > 40:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// actionPriority maps an opportunity score onto the priority scale. An
// unknown score is treated as zero.
func actionPriority(score *float64) string {
	s := 0.0
	if score != nil {
		s = *score
	}
	switch {
	case s > 60:
		return "CRITICAL"
	case s > 40:
		return "HIGH"
	case s > 20:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func zeroIfNil(v *float64) float64 {
	if v != nil {
		return *v
	}
	return 0
}

// DeriveOpportunities scores commodities directly when no pre-computed
// opportunity table exists. The score weighs growth at 0.5 and market share
// at 0.3 over a base of 20; volatility is read as the growth magnitude.
func DeriveOpportunities(rows []dataset.Commodity) []dataset.Opportunity {
	opportunities := make([]dataset.Opportunity, 0, len(rows))
	for _, row := range rows {
		growth := 0.0
		if row.Growth != nil {
			growth = *row.Growth
		}
		score := growth*0.5 + row.SharePercent*0.3 + 20
		volatility := math.Abs(growth)
		share := row.SharePercent

		opportunities = append(opportunities, dataset.Opportunity{
			Description: row.Description,
			SITCCode:    row.SITCCode,
			Score:       &score,
			Growth:      &growth,
			Volatility:  &volatility,
			MarketShare: &share,
		})
	}
	return opportunities
}
