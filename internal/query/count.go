package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// countHandler answers "how many samples per site" style questions. The
// grouping noun is chosen exclusively in priority order site > year >
// month; with none of them the answer is the total row count.
func countHandler() handler {
	return handler{
		name: "count",
		match: func(q string) bool {
			return containsAny(q, "how many", "count", "number of")
		},
		run: runCount,
	}
}

func runCount(q string, tbl *table.Table) (Result, error) {
	switch {
	case strings.Contains(q, "site"):
		groups := tbl.GroupByString(lexicon.ColSite)
		rows := make([]table.Row, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, table.Row{lexicon.ColSite: g.Key, "sample_count": g.View.Len()})
		}
		result := table.New([]string{lexicon.ColSite, "sample_count"}, rows).
			SortByFloat("sample_count", false)
		return Matched("Number of samples per site:", result), nil

	case strings.Contains(q, "year"):
		groups := tbl.GroupByInt(lexicon.ColYear)
		rows := make([]table.Row, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, table.Row{lexicon.ColYear: g.Int, "sample_count": g.View.Len()})
		}
		result := table.New([]string{lexicon.ColYear, "sample_count"}, rows)
		return Matched("Number of samples per year:", result), nil

	case strings.Contains(q, "month"):
		groups := tbl.GroupByInt(lexicon.ColMonth)
		rows := make([]table.Row, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, table.Row{lexicon.ColMonth: g.Int, "sample_count": g.View.Len()})
		}
		result := table.New([]string{lexicon.ColMonth, "sample_count"}, rows)
		return Matched("Number of samples per month:", result), nil

	default:
		total := tbl.Len()
		result := table.New([]string{"Total Samples"}, []table.Row{{"Total Samples": total}})
		explanation := fmt.Sprintf("Total number of samples in the dataset: %d", total)
		return Matched(explanation, result), nil
	}
}
