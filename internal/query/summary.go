package query

import (
	"fmt"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// summaryHandler answers "summary statistics for ph" style questions with
// descriptive statistics: long form for a single named parameter, wide form
// across the key parameter set otherwise.
func summaryHandler() handler {
	return handler{
		name: "summary",
		match: func(q string) bool {
			return containsAny(q, "summary", "describe", "statistics", "stats")
		},
		run: runSummary,
	}
}

func runSummary(q string, tbl *table.Table) (Result, error) {
	param := extract.Parameter(q)

	if param != "" && tbl.HasColumn(param) {
		d := table.Describe(tbl.Floats(param))
		vals := d.Values()
		rows := make([]table.Row, 0, len(vals))
		for i, label := range table.DescribeLabels {
			rows = append(rows, table.Row{"Statistic": label, param: vals[i]})
		}
		result := table.New([]string{"Statistic", param}, rows)
		return Matched(fmt.Sprintf("Summary statistics for %s:", param), result), nil
	}

	cols := []string{"Parameter", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	var rows []table.Row
	for _, p := range lexicon.KeyParameters {
		if !tbl.HasColumn(p) {
			continue
		}
		d := table.Describe(tbl.Floats(p))
		rows = append(rows, table.Row{
			"Parameter": p, "Count": d.Count, "Mean": d.Mean, "Std": d.Std,
			"Min": d.Min, "25%": d.Q25, "50%": d.Q50, "75%": d.Q75, "Max": d.Max,
		})
	}
	result := table.New(cols, rows)
	return Matched("Summary statistics for key water quality parameters:", result), nil
}
