// Package dataset loads the raw trade tables the pipeline consumes.
//
// Every loader is schema-tolerant the same way: rows are read through a
// header-index map, numeric cells that fail to parse coerce to a missing
// value instead of raising, and a missing optional column substitutes its
// documented default. Only an unreadable file or an empty table is an error.
package dataset

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"
	"strings"

	apperrors "rwexcli/internal/errors"
)

// table is a parsed CSV with header-index lookup
type table struct {
	header  map[string]int
	rows    [][]string
	columns []string
}

// readTable reads a CSV file into a table with a header-index map
func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, apperrors.NewStorageError("failed to open input file", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to parse CSV", err).WithContext("path", path)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("empty CSV file", nil).WithContext("path", path)
	}

	return newTable(records[0], records[1:]), nil
}

// newTable builds a table from a header row and data rows
func newTable(header []string, rows [][]string) *table {
	index := make(map[string]int, len(header))
	columns := make([]string, 0, len(header))
	for i, col := range header {
		col = strings.TrimSpace(stripBOM(col))
		index[col] = i
		columns = append(columns, col)
	}
	return &table{header: index, rows: rows, columns: columns}
}

// hasColumn reports whether the table carries the named column
func (t *table) hasColumn(name string) bool {
	_, ok := t.header[name]
	return ok
}

// cell returns the trimmed cell value, or "" when the column is absent
// or the row is short
func (t *table) cell(row []string, column string) string {
	idx, ok := t.header[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// stringCell returns the cell value for a required string column
func (t *table) stringCell(row []string, column string) string {
	return t.cell(row, column)
}

// floatCell parses a numeric cell, coercing blanks and garbage to nil
func (t *table) floatCell(row []string, column string) *float64 {
	return parseNullableFloat(t.cell(row, column))
}

// numberCell parses a numeric cell with a 0 default for missing values
func (t *table) numberCell(row []string, column string) float64 {
	if v := t.floatCell(row, column); v != nil {
		return *v
	}
	return 0
}

// parseNullableFloat converts a cell to a float, treating empty and
// non-numeric values as missing. Thousands separators are tolerated since
// WITS exports format large values with commas.
func parseNullableFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// stripBOM removes a UTF-8 byte order mark from the start of a header cell
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}

// warnMissingColumns logs once per absent column so a renamed header is
// visible in the run narration rather than silently producing zeros
func warnMissingColumns(logger *slog.Logger, path string, t *table, columns ...string) {
	for _, col := range columns {
		if !t.hasColumn(col) {
			logger.Warn("column missing from input, substituting defaults",
				slog.String("path", path),
				slog.String("column", col))
		}
	}
}
