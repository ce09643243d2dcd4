package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// extremeHandler answers "coldest january water temperature from 1981 to
// 1995" style questions: it averages the parameter per year under the
// requested filters and names the year with the lowest or highest mean.
func extremeHandler() handler {
	return handler{
		name: "extreme",
		match: func(q string) bool {
			_, ok := extract.ExtremeVerb(q)
			return ok
		},
		run: runExtreme,
	}
}

func runExtreme(q string, tbl *table.Table) (Result, error) {
	verb, ok := extract.ExtremeVerb(q)
	if !ok {
		return Abstained(), nil
	}
	param := extract.Parameter(q)
	if param == "" || !tbl.HasColumn(param) {
		return Abstained(), nil
	}

	month := extract.Month(q)
	yearStart, yearEnd := extract.YearRange(q)
	season := extract.Season(q)

	filtered := tbl
	var filterDesc []string
	if month != 0 {
		filtered = filtered.Filter(func(r table.Row) bool {
			m, ok := table.Int(r, lexicon.ColMonth)
			return ok && m == month
		})
		filterDesc = append(filterDesc, "month = "+lexicon.MonthLabel(month))
	}
	if season != "" {
		filtered = filtered.Filter(func(r table.Row) bool {
			return table.Text(r, lexicon.ColSeason) == season
		})
		filterDesc = append(filterDesc, "season = "+season)
	}
	if yearStart != 0 && yearEnd != 0 {
		filtered = filtered.Filter(func(r table.Row) bool {
			y, ok := table.Int(r, lexicon.ColYear)
			return ok && y >= yearStart && y <= yearEnd
		})
		filterDesc = append(filterDesc, fmt.Sprintf("years %d-%d", yearStart, yearEnd))
	}

	if filtered.Len() == 0 {
		return Matched("No data found matching your criteria.", nil), nil
	}

	// Mean per year; years with no readings keep a missing mean and sort
	// last in the result table but cannot win the extreme.
	groups := filtered.GroupByInt(lexicon.ColYear)
	avgCol := "Avg " + param
	rows := make([]table.Row, 0, len(groups))
	bestYear := 0
	bestVal := 0.0
	found := false
	for _, g := range groups {
		vals := g.View.Floats(param)
		row := table.Row{"Year": g.Int}
		if len(vals) > 0 {
			mean := table.Mean(vals)
			row[avgCol] = mean
			better := (verb == lexicon.AggMin && mean < bestVal) ||
				(verb == lexicon.AggMax && mean > bestVal)
			if !found || better {
				bestYear, bestVal = g.Int, mean
				found = true
			}
		} else {
			row[avgCol] = nil
		}
		rows = append(rows, row)
	}
	if !found {
		return Result{}, fmt.Errorf("no %s readings in the filtered rows to take a %s of", param, verb)
	}

	extremeWord := "highest"
	if verb == lexicon.AggMin {
		extremeWord = "lowest"
	}
	filterStr := ""
	if len(filterDesc) > 0 {
		filterStr = " with " + strings.Join(filterDesc, ", ")
	}
	explanation := fmt.Sprintf("The %s average %s%s was in %d with a value of %s.",
		extremeWord, param, filterStr, bestYear, num2(bestVal))

	result := table.New([]string{"Year", avgCol}, rows).SortByFloat(avgCol, true)
	return Matched(explanation, result), nil
}
