package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "rwexcli/internal/errors"
)

// Partner table column names as exported by WITS
const (
	ColPartnerName  = "Partner Name"
	ColExportValue  = "Export (US$ Thousand)"
	ColPartnerShare = "Export Partner Share (%)"
	ColProductShare = "Export Share in Total Products (%)"
	ColProductCount = "No Of exported HS6 digit Products"
)

// PartnerYear is one partner row from a yearly WITS export file.
// All numeric fields are nullable; the combiner drops rows without an
// export value and coerces the rest to defaults.
type PartnerYear struct {
	PartnerName    string
	Year           int
	ExportThousand *float64 // export value, USD thousands
	PartnerShare   *float64
	ProductShare   *float64
	ProductCount   *float64
}

// LoadPartnerYear loads one year of WITS partner data from the raw data
// directory. It prefers the original workbook (WITS-Partner_<year>.xlsx)
// and falls back to the sheet's CSV export when only that exists.
func LoadPartnerYear(logger *slog.Logger, rawDir string, year int) ([]PartnerYear, error) {
	workbook := filepath.Join(rawDir, fmt.Sprintf("WITS-Partner_%d.xlsx", year))
	if _, err := os.Stat(workbook); err == nil {
		return LoadPartnerYearWorkbook(logger, workbook, year)
	}

	csvExport := filepath.Join(rawDir, fmt.Sprintf("WITS-Partner_%d.xlsx - Partner.csv", year))
	if _, err := os.Stat(csvExport); err == nil {
		return LoadPartnerYearCSV(logger, csvExport, year)
	}

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("partner data for %d", year)).
		WithContext("workbook", workbook).
		WithContext("csv", csvExport)
}

// LoadPartnerYearCSV loads partner data from a CSV export of the workbook
func LoadPartnerYearCSV(logger *slog.Logger, path string, year int) ([]PartnerYear, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return partnersFromTable(logger, path, t, year), nil
}

// LoadPartnerYearWorkbook loads partner data from the original WITS
// workbook using the "Partner" sheet, or the first sheet if it is absent
func LoadPartnerYearWorkbook(logger *slog.Logger, path string, year int) ([]PartnerYear, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheet := ""
	for _, sh := range f.GetSheetList() {
		if strings.EqualFold(sh, "partner") {
			sheet = sh
			break
		}
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("path", path)
		}
		sheet = sheets[0]
		logger.Warn("no Partner sheet in workbook, using first sheet",
			slog.String("path", path),
			slog.String("sheet", sheet))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read workbook sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("empty workbook sheet", nil).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}

	t := newTable(rows[0], rows[1:])
	return partnersFromTable(logger, path, t, year), nil
}

func partnersFromTable(logger *slog.Logger, path string, t *table, year int) []PartnerYear {
	warnMissingColumns(logger, path, t,
		ColPartnerName, ColExportValue, ColPartnerShare, ColProductShare, ColProductCount)

	partners := make([]PartnerYear, 0, len(t.rows))
	for _, row := range t.rows {
		partners = append(partners, PartnerYear{
			PartnerName:    t.stringCell(row, ColPartnerName),
			Year:           year,
			ExportThousand: t.floatCell(row, ColExportValue),
			PartnerShare:   t.floatCell(row, ColPartnerShare),
			ProductShare:   t.floatCell(row, ColProductShare),
			ProductCount:   t.floatCell(row, ColProductCount),
		})
	}

	return partners
}
