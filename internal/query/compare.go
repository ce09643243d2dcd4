package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

var monthYearPattern = regexp.MustCompile(`(\w+)\s+(\d{4})`)

// comparisonHandler answers comparison questions. Three shapes are tried
// in order: two "<month> <year>" periods, two or more named seasons, and a
// generic across-all-seasons comparison when any season wording appears.
// When the question names no known parameter the comparison defaults to
// water temperature.
func comparisonHandler() handler {
	return handler{
		name: "comparison",
		match: func(q string) bool {
			return containsAny(q, "compare", " vs ", "versus", "between")
		},
		run: runComparison,
	}
}

func runComparison(q string, tbl *table.Table) (Result, error) {
	param := comparisonParameter(q, tbl)

	// Shape (a): exactly two resolvable "<month> <year>" periods. A pair
	// of word/year matches where the words are not both month names falls
	// through to the season shapes.
	if res, done := compareMonthYearPeriods(q, tbl, param); done {
		return res, nil
	}

	// Shape (b): two or more named seasons.
	var seasonsFound []string
	for _, s := range lexicon.SeasonNames {
		if strings.Contains(q, s) {
			seasonsFound = append(seasonsFound, lexicon.CanonicalSeason(s))
		}
	}
	if len(seasonsFound) >= 2 {
		in := func(label string) bool {
			for _, s := range seasonsFound {
				if s == label {
					return true
				}
			}
			return false
		}
		subset := tbl.Filter(func(r table.Row) bool {
			return in(table.Text(r, lexicon.ColSeason))
		})
		result := seasonStats(subset, param)
		explanation := fmt.Sprintf("Comparison of %s between %s:",
			param, strings.Join(seasonsFound, " and "))
		return Matched(explanation, result), nil
	}

	// Shape (c): any season wording at all compares across every season.
	if strings.Contains(q, "season") || len(seasonsFound) > 0 {
		result := seasonStats(tbl, param)
		explanation := fmt.Sprintf("Comparison of %s across all seasons:", param)
		return Matched(explanation, result), nil
	}

	return Abstained(), nil
}

// comparisonParameter resolves the compared parameter, preferring an alias
// whose column exists in the schema and defaulting to water temperature
// when the question names nothing the lexicon knows.
func comparisonParameter(q string, tbl *table.Table) string {
	param := extract.Parameter(q)
	if param != "" && tbl.HasColumn(param) {
		return param
	}
	for _, a := range lexicon.ParameterAliases {
		if strings.Contains(q, a.Text) && tbl.HasColumn(a.Column) {
			return a.Column
		}
	}
	if param == "" {
		return lexicon.ColWaterTemp
	}
	return param
}

// compareMonthYearPeriods implements shape (a). done is true when the
// question yielded two month-year periods, in which case the result is
// final even if one or both periods hold no data.
func compareMonthYearPeriods(q string, tbl *table.Table, param string) (Result, bool) {
	matches := monthYearPattern.FindAllStringSubmatch(q, -1)
	if len(matches) < 2 {
		return Result{}, false
	}

	type period struct {
		month int
		year  int
		label string
	}
	var periods []period
	for _, m := range matches[:2] {
		word, yearStr := m[1], m[2]
		num := 0
		for _, mn := range lexicon.MonthNames {
			if mn.Name == strings.ToLower(word) {
				num = mn.Number
				break
			}
		}
		if num == 0 {
			continue
		}
		year, _ := strconv.Atoi(yearStr)
		periods = append(periods, period{num, year, lexicon.Title(word) + " " + yearStr})
	}
	if len(periods) != 2 {
		return Result{}, false
	}

	cols := []string{"Period", "Mean", "Min", "Max", "Count"}
	var rows []table.Row
	for _, p := range periods {
		view := tbl.Filter(func(r table.Row) bool {
			m, mok := table.Int(r, lexicon.ColMonth)
			y, yok := table.Int(r, lexicon.ColYear)
			return mok && yok && m == p.month && y == p.year
		})
		if view.Len() == 0 {
			continue
		}
		vals := view.Floats(param)
		rows = append(rows, table.Row{
			"Period": p.label,
			"Mean":   table.Mean(vals),
			"Min":    table.Min(vals),
			"Max":    table.Max(vals),
			"Count":  len(vals),
		})
	}
	if len(rows) == 0 {
		return Matched("No data found for the specified time periods.", nil), true
	}
	explanation := fmt.Sprintf("Comparison of %s between %s and %s:",
		param, periods[0].label, periods[1].label)
	return Matched(explanation, table.New(cols, rows)), true
}

// seasonStats builds the per-season mean/min/max/count table.
func seasonStats(tbl *table.Table, param string) *table.Table {
	cols := []string{lexicon.ColSeason, "mean", "min", "max", "count"}
	var rows []table.Row
	for _, g := range tbl.GroupByString(lexicon.ColSeason) {
		vals := g.View.Floats(param)
		rows = append(rows, table.Row{
			lexicon.ColSeason: g.Key,
			"mean":            table.Mean(vals),
			"min":             table.Min(vals),
			"max":             table.Max(vals),
			"count":           len(vals),
		})
	}
	return table.New(cols, rows)
}
