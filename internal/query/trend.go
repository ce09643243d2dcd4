package query

import (
	"fmt"
	"math"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// trendHandler answers "temperature trend over time" style questions with
// per-year statistics and, when more than one year of data exists, the
// absolute and percentage change between the first and last yearly mean.
func trendHandler() handler {
	return handler{
		name: "trend",
		match: func(q string) bool {
			return containsAny(q, "trend", "over time", "change")
		},
		run: runTrend,
	}
}

func runTrend(q string, tbl *table.Table) (Result, error) {
	param := extract.Parameter(q)
	if param == "" || !tbl.HasColumn(param) {
		param = lexicon.ColWaterTemp
	}

	cols := []string{"Year", "Mean", "Min", "Max", "Sample Count"}
	groups := tbl.GroupByInt(lexicon.ColYear)
	rows := make([]table.Row, 0, len(groups))
	for _, g := range groups {
		vals := g.View.Floats(param)
		rows = append(rows, table.Row{
			"Year":         g.Int,
			"Mean":         table.Mean(vals),
			"Min":          table.Min(vals),
			"Max":          table.Max(vals),
			"Sample Count": len(vals),
		})
	}
	yearly := table.New(cols, rows)

	if len(rows) > 1 {
		firstVal, _ := table.Number(rows[0], "Mean")
		lastVal, _ := table.Number(rows[len(rows)-1], "Mean")
		change := lastVal - firstVal
		changePct := 0.0
		if firstVal != 0 {
			changePct = change / firstVal * 100
		}
		direction := "decreased"
		if change > 0 {
			direction = "increased"
		}
		firstYear, _ := table.Int(rows[0], "Year")
		lastYear, _ := table.Int(rows[len(rows)-1], "Year")
		explanation := fmt.Sprintf("Trend of %s over time: %s by %s (%s%%) from %d to %d",
			param, direction, num2(math.Abs(change)), num1(math.Abs(changePct)),
			firstYear, lastYear)
		return Matched(explanation, yearly), nil
	}
	return Matched(fmt.Sprintf("Yearly statistics for %s:", param), yearly), nil
}
