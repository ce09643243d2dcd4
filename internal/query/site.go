package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// siteHandler answers "show data for site 2" style questions: the most
// recent samples for one site, optionally restricted to a year range.
func siteHandler() handler {
	return handler{
		name: "site",
		match: func(q string) bool {
			return strings.Contains(q, "site")
		},
		run: runSite,
	}
}

func runSite(q string, tbl *table.Table) (Result, error) {
	id, ok := extract.Site(q)
	if !ok {
		return Abstained(), nil
	}

	siteRows := tbl.Filter(func(r table.Row) bool {
		return siteMatches(r, id)
	})
	if siteRows.Len() == 0 {
		return Matched(fmt.Sprintf("No data found for site %s.", id.Label()), nil), nil
	}

	if yearStart, yearEnd := extract.YearRange(q); yearStart != 0 {
		siteRows = siteRows.Filter(func(r table.Row) bool {
			y, ok := table.Int(r, lexicon.ColYear)
			return ok && y >= yearStart && y <= yearEnd
		})
	}

	result := siteRows.Select(lexicon.DefaultDisplayColumns...).Tail(20)
	explanation := fmt.Sprintf("Data for site %s (%d total samples, showing last 20):",
		id.Label(), siteRows.Len())
	return Matched(explanation, result), nil
}

// siteMatches compares a row's site cell against an extracted id. Site
// cells may be stored as strings or numbers depending on the source file;
// both are compared through their display form so "2", 2 and 2.0 agree.
func siteMatches(r table.Row, id extract.SiteID) bool {
	cell := table.Text(r, lexicon.ColSite)
	if cell == "" {
		return false
	}
	if cell == id.Label() {
		return true
	}
	if v, ok := table.Number(r, lexicon.ColSite); ok {
		return v == id.Float
	}
	return false
}
