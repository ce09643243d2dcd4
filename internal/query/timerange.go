package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// timeRangeHandler answers "data from 2020" or "samples in january 2019"
// style questions: a listing of the first rows matching the year and/or
// month filters. No parameter is required.
func timeRangeHandler() handler {
	return handler{
		name: "timerange",
		match: func(q string) bool {
			yearStart, _ := extract.YearRange(q)
			return yearStart != 0 || extract.Month(q) != 0
		},
		run: runTimeRange,
	}
}

func runTimeRange(q string, tbl *table.Table) (Result, error) {
	yearStart, yearEnd := extract.YearRange(q)
	month := extract.Month(q)
	if yearStart == 0 && month == 0 {
		return Abstained(), nil
	}

	filtered := tbl
	var filterDesc []string
	if yearStart != 0 && yearEnd != 0 {
		if yearStart == yearEnd {
			filtered = filtered.Filter(func(r table.Row) bool {
				y, ok := table.Int(r, lexicon.ColYear)
				return ok && y == yearStart
			})
			filterDesc = append(filterDesc, fmt.Sprintf("year %d", yearStart))
		} else {
			filtered = filtered.Filter(func(r table.Row) bool {
				y, ok := table.Int(r, lexicon.ColYear)
				return ok && y >= yearStart && y <= yearEnd
			})
			filterDesc = append(filterDesc, fmt.Sprintf("years %d-%d", yearStart, yearEnd))
		}
	}
	if month != 0 {
		filtered = filtered.Filter(func(r table.Row) bool {
			m, ok := table.Int(r, lexicon.ColMonth)
			return ok && m == month
		})
		filterDesc = append(filterDesc, lexicon.MonthLabel(month))
	}

	desc := strings.Join(filterDesc, ", ")
	if filtered.Len() == 0 {
		return Matched(fmt.Sprintf("No data found for %s.", desc), nil), nil
	}

	result := filtered.Select(lexicon.TimeDisplayColumns...).Head(30)
	explanation := fmt.Sprintf("Data for %s (%d samples, showing first 30):", desc, filtered.Len())
	return Matched(explanation, result), nil
}
