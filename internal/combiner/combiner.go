// Package combiner unifies the yearly WITS partner-export files into one
// cleaned dataset with regional labels and year-over-year growth, plus the
// derived summary tables the analysis notebook and dashboard consume.
package combiner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"rwexcli/internal/dataset"
	apperrors "rwexcli/internal/errors"
)

// Record is one partner-year observation in the combined dataset
type Record struct {
	PartnerName   string
	Year          int
	TransactionID string
	Region        string

	ExportThousand float64 // export value, USD thousands
	PartnerShare   float64
	ProductShare   float64
	ProductCount   float64

	ExportValueUSD      float64
	ExportValueMillions float64

	// Growth fields are nil for a partner's first observed year
	YoYGrowthRate *float64 // percent change vs. previous observed year
	YoYGrowthAbs  *float64 // absolute change, USD thousands
}

// Combiner cleans and combines yearly partner tables
type Combiner struct {
	logger *slog.Logger
}

// New creates a Combiner
func New(logger *slog.Logger) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{logger: logger}
}

// Combine merges per-year partner rows into the combined dataset. Rows
// without an export value are dropped, partner names are normalized, and
// each partner's records get year-over-year growth against its previous
// observed year. Returns a NO_DATA error when nothing usable was supplied.
func (c *Combiner) Combine(ctx context.Context, rowsByYear map[int][]dataset.PartnerYear) ([]Record, error) {
	var records []Record

	years := make([]int, 0, len(rowsByYear))
	for year := range rowsByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		kept := 0
		for _, row := range rowsByYear[year] {
			// Rows with no export value carry nothing to analyze
			if row.ExportThousand == nil {
				continue
			}

			name := strings.TrimSpace(row.PartnerName)
			exportThousand := *row.ExportThousand

			records = append(records, Record{
				PartnerName:         name,
				Year:                year,
				TransactionID:       transactionID(name, year),
				Region:              AssignRegion(name),
				ExportThousand:      exportThousand,
				PartnerShare:        valueOrZero(row.PartnerShare),
				ProductShare:        valueOrZero(row.ProductShare),
				ProductCount:        valueOrZero(row.ProductCount),
				ExportValueUSD:      exportThousand * 1000,
				ExportValueMillions: exportThousand / 1000,
			})
			kept++
		}

		c.logger.InfoContext(ctx, "loaded partner records",
			slog.Int("year", year),
			slog.Int("records", kept),
			slog.Int("dropped", len(rowsByYear[year])-kept))
	}

	if len(records) == 0 {
		return nil, apperrors.NewNoDataError("no partner records with export values could be loaded")
	}

	computeGrowth(records)

	c.logger.InfoContext(ctx, "combined partner dataset",
		slog.Int("records", len(records)),
		slog.Int("years", len(years)),
		slog.Int("unique_partners", countUniquePartners(records)))

	return records, nil
}

// computeGrowth sorts the records by partner then year and fills in the
// year-over-year growth columns. The first observed year for a partner has
// undefined growth; so does a year following a zero-value observation,
// since percent change from zero is meaningless.
func computeGrowth(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].PartnerName != records[j].PartnerName {
			return records[i].PartnerName < records[j].PartnerName
		}
		return records[i].Year < records[j].Year
	})

	for i := range records {
		if i == 0 || records[i].PartnerName != records[i-1].PartnerName {
			continue
		}
		prev := records[i-1].ExportThousand
		abs := records[i].ExportThousand - prev
		records[i].YoYGrowthAbs = &abs
		if prev != 0 {
			rate := abs / prev * 100
			records[i].YoYGrowthRate = &rate
		}
	}
}

// transactionID builds the synthetic identifier carried through from the
// raw data preparation, e.g. "RW-KEN-2022"
func transactionID(partner string, year int) string {
	prefix := strings.ToUpper(partner)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("RW-%s-%d", prefix, year)
}

func valueOrZero(v *float64) float64 {
	if v != nil {
		return *v
	}
	return 0
}

func countUniquePartners(records []Record) int {
	partners := make(map[string]bool)
	for _, r := range records {
		partners[r.PartnerName] = true
	}
	return len(partners)
}

// PartnerTotal is a partner's total export value across all years
type PartnerTotal struct {
	PartnerName   string
	TotalMillions float64
}

// TopPartners returns the n partners with the highest total export value
// (millions) across all years, for the end-of-run narration
func TopPartners(records []Record, n int) []PartnerTotal {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.PartnerName] += r.ExportValueMillions
	}

	ranked := make([]PartnerTotal, 0, len(totals))
	for name, total := range totals {
		ranked = append(ranked, PartnerTotal{PartnerName: name, TotalMillions: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].TotalMillions != ranked[j].TotalMillions {
			return ranked[i].TotalMillions > ranked[j].TotalMillions
		}
		return ranked[i].PartnerName < ranked[j].PartnerName
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
