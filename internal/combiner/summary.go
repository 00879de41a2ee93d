package combiner

import (
	"math"
	"sort"
)

// YearSummary is the yearly rollup of the combined dataset
type YearSummary struct {
	Year           int
	TotalExportsM  float64
	Transactions   int
	UniquePartners int
	TotalProducts  float64
}

// RegionSummary is the per-region, per-year rollup
type RegionSummary struct {
	Region         string
	Year           int
	ExportsM       float64
	UniquePartners int
}

// PartnerGrowth summarizes growth behavior for partners with at least two
// years of observed growth data
type PartnerGrowth struct {
	PartnerName      string
	AvgGrowthRate    float64
	GrowthVolatility float64 // sample standard deviation of growth rates
	YearsOfData      int
	FirstYearValue   float64 // millions, earliest growth-bearing year
	LastYearValue    float64 // millions, latest growth-bearing year
}

// YearlySummary aggregates the combined records per year, sorted ascending
func YearlySummary(records []Record) []YearSummary {
	type bucket struct {
		exportsM float64
		count    int
		partners map[string]bool
		products float64
	}
	buckets := make(map[int]*bucket)

	for _, r := range records {
		b, ok := buckets[r.Year]
		if !ok {
			b = &bucket{partners: make(map[string]bool)}
			buckets[r.Year] = b
		}
		b.exportsM += r.ExportValueMillions
		b.count++
		b.partners[r.PartnerName] = true
		b.products += r.ProductCount
	}

	summaries := make([]YearSummary, 0, len(buckets))
	for year, b := range buckets {
		summaries = append(summaries, YearSummary{
			Year:           year,
			TotalExportsM:  round2(b.exportsM),
			Transactions:   b.count,
			UniquePartners: len(b.partners),
			TotalProducts:  round2(b.products),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year < summaries[j].Year })

	return summaries
}

// RegionalSummary aggregates the combined records per region and year,
// sorted by region then year
func RegionalSummary(records []Record) []RegionSummary {
	type key struct {
		region string
		year   int
	}
	type bucket struct {
		exportsM float64
		partners map[string]bool
	}
	buckets := make(map[key]*bucket)

	for _, r := range records {
		k := key{region: r.Region, year: r.Year}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{partners: make(map[string]bool)}
			buckets[k] = b
		}
		b.exportsM += r.ExportValueMillions
		b.partners[r.PartnerName] = true
	}

	summaries := make([]RegionSummary, 0, len(buckets))
	for k, b := range buckets {
		summaries = append(summaries, RegionSummary{
			Region:         k.region,
			Year:           k.year,
			ExportsM:       round2(b.exportsM),
			UniquePartners: len(b.partners),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Region != summaries[j].Region {
			return summaries[i].Region < summaries[j].Region
		}
		return summaries[i].Year < summaries[j].Year
	})

	return summaries
}

// GrowthAnalysis summarizes growth for partners with two or more years of
// growth observations, sorted by partner name. First/last values come from
// the growth-bearing rows in year order, matching the source preparation.
func GrowthAnalysis(records []Record) []PartnerGrowth {
	// records are already sorted by (partner, year) after Combine
	type bucket struct {
		rates  []float64
		values []float64
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, r := range records {
		if r.YoYGrowthRate == nil {
			continue
		}
		b, ok := buckets[r.PartnerName]
		if !ok {
			b = &bucket{}
			buckets[r.PartnerName] = b
			order = append(order, r.PartnerName)
		}
		b.rates = append(b.rates, *r.YoYGrowthRate)
		b.values = append(b.values, r.ExportValueMillions)
	}
	sort.Strings(order)

	var analysis []PartnerGrowth
	for _, name := range order {
		b := buckets[name]
		if len(b.rates) < 2 {
			continue
		}
		mean := meanOf(b.rates)
		analysis = append(analysis, PartnerGrowth{
			PartnerName:      name,
			AvgGrowthRate:    round2(mean),
			GrowthVolatility: round2(sampleStdDev(b.rates, mean)),
			YearsOfData:      len(b.rates),
			FirstYearValue:   round2(b.values[0]),
			LastYearValue:    round2(b.values[len(b.values)-1]),
		})
	}

	return analysis
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation, matching the volatility
// definition used throughout the analysis
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
