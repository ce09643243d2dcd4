package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// listHandler answers "list all sites" style questions with the distinct
// sorted values of the requested noun: sites, columns or years. It sits
// last in the cascade because its "what" trigger is so broad.
func listHandler() handler {
	return handler{
		name: "list",
		match: func(q string) bool {
			return containsAny(q, "list", "show all", "what")
		},
		run: runList,
	}
}

func runList(q string, tbl *table.Table) (Result, error) {
	if strings.Contains(q, "site") {
		sites := tbl.UniqueStrings(lexicon.ColSite)
		rows := make([]table.Row, 0, len(sites))
		for _, s := range sites {
			rows = append(rows, table.Row{"Sites": s})
		}
		explanation := fmt.Sprintf("All %d sites in the dataset:", len(sites))
		return Matched(explanation, table.New([]string{"Sites"}, rows)), nil
	}

	if containsAny(q, "column", "parameter", "variable") {
		cols := tbl.Columns()
		rows := make([]table.Row, 0, len(cols))
		for _, c := range cols {
			rows = append(rows, table.Row{"Columns": c})
		}
		explanation := fmt.Sprintf("All %d columns in the dataset:", len(cols))
		return Matched(explanation, table.New([]string{"Columns"}, rows)), nil
	}

	if strings.Contains(q, "year") {
		years := tbl.UniqueInts(lexicon.ColYear)
		rows := make([]table.Row, 0, len(years))
		for _, y := range years {
			rows = append(rows, table.Row{"Years": y})
		}
		explanation := fmt.Sprintf("All %d years in the dataset:", len(years))
		return Matched(explanation, table.New([]string{"Years"}, rows)), nil
	}

	return Abstained(), nil
}
