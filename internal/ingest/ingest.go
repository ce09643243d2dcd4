// Package ingest loads a monitoring spreadsheet (CSV/TSV or XLSX) into a
// table snapshot. Cells are typed on the way in: numbers become float64,
// dates become time.Time, the site column is normalized to strings, and
// the year/month/season columns are derived from the sample date when the
// source file lacks them.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// DefaultSheet is the workbook sheet holding field data.
const DefaultSheet = "FieldData"

// Load reads the file at path into a table. XLSX files read the named
// sheet (DefaultSheet when sheet is empty); anything else is treated as
// CSV/TSV.
func Load(path, sheet string) (*table.Table, error) {
	var (
		records [][]string
		err     error
	)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		if sheet == "" {
			sheet = DefaultSheet
		}
		records, err = readSheetRows(path, sheet)
	} else {
		records, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load %s: no header row", filepath.Base(path))
	}
	return build(records[0], records[1:]), nil
}

// build types the raw string grid and derives the calendar columns.
func build(header []string, records [][]string) *table.Table {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	hasYear := contains(cols, lexicon.ColYear)
	hasMonth := contains(cols, lexicon.ColMonth)
	hasSeason := contains(cols, lexicon.ColSeason)

	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			if i >= len(rec) {
				row[c] = nil
				continue
			}
			row[c] = typeCell(c, strings.TrimSpace(rec[i]))
		}
		if d, ok := table.Time(row, lexicon.ColSampleDate); ok {
			if !hasYear {
				row[lexicon.ColYear] = d.Year()
			}
			if !hasMonth {
				row[lexicon.ColMonth] = int(d.Month())
			}
			if !hasSeason {
				row[lexicon.ColSeason] = seasonOf(d.Month())
			}
		}
		rows = append(rows, row)
	}

	if !hasYear {
		cols = append(cols, lexicon.ColYear)
	}
	if !hasMonth {
		cols = append(cols, lexicon.ColMonth)
	}
	if !hasSeason {
		cols = append(cols, lexicon.ColSeason)
	}
	return table.New(cols, rows)
}

// typeCell converts one raw cell to its typed value. Empty cells are nil.
// Site ids stay strings so integer and decimal ids mix cleanly; year and
// month become int; date columns parse through the known layouts (or an
// Excel serial number); everything else tries numeric before falling back
// to the raw string.
func typeCell(col, raw string) any {
	if raw == "" {
		return nil
	}
	switch col {
	case lexicon.ColSite:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return formatSite(f)
		}
		return raw
	case lexicon.ColYear, lexicon.ColMonth:
		if f, ok := parseNumber(raw); ok {
			return int(f)
		}
		return raw
	case lexicon.ColSampleDate:
		if d, ok := parseDate(raw); ok {
			return d
		}
		return raw
	case lexicon.ColSeason:
		return raw
	}
	if f, ok := parseNumber(raw); ok {
		return f
	}
	if d, ok := parseDate(raw); ok {
		return d
	}
	return raw
}

// parseNumber parses a numeric cell, tolerating a trailing percent sign
// and comma thousands separators.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") && strings.Count(s, ".") <= 1 {
		s = strings.ReplaceAll(s, ",", "")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "01/02/2006", "02/01/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006", "1/2/2006 15:04",
}

// excelEpoch is day zero of the 1900 date system (accounting for the
// historical leap-year bug, serial 1 is 1899-12-31).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseDate parses a date cell from the known layouts, or from an Excel
// serial number as produced by XLSX sheets.
func parseDate(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 20000 && serial < 80000 {
		days := int(serial)
		frac := serial - float64(days)
		t := excelEpoch.AddDate(0, 0, days).
			Add(time.Duration(frac * 24 * float64(time.Hour)))
		return t, true
	}
	return time.Time{}, false
}

// seasonOf maps a month to its meteorological season label.
func seasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Fall"
	}
}

// formatSite renders a numeric site id without a trailing ".0".
func formatSite(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
