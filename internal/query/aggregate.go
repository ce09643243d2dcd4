package query

import (
	"fmt"

	"github.com/ruheeh/waterchatbot/internal/extract"
	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// aggregationHandler answers "average dissolved oxygen by year" style
// questions. The grouping key is chosen by phrase cues in fixed priority
// (year > month > season > site); without a cue the aggregate is a single
// scalar over the whole column.
func aggregationHandler() handler {
	return handler{
		name: "aggregation",
		match: func(q string) bool {
			// Aggregation never abstains on the verb (mean is the default),
			// so the trigger is the parameter: without one this handler has
			// nothing to aggregate.
			return extract.Parameter(q) != ""
		},
		run: runAggregation,
	}
}

func runAggregation(q string, tbl *table.Table) (Result, error) {
	verb := extract.Aggregation(q)
	param := extract.Parameter(q)
	if param == "" || !tbl.HasColumn(param) {
		return Abstained(), nil
	}

	groupCol := ""
	switch {
	case containsAny(q, "by year", "per year", "yearly"):
		groupCol = lexicon.ColYear
	case containsAny(q, "by month", "per month", "monthly"):
		groupCol = lexicon.ColMonth
	case containsAny(q, "by season", "per season", "seasonal"):
		groupCol = lexicon.ColSeason
	case containsAny(q, "by site", "per site"):
		groupCol = lexicon.ColSite
	}

	if groupCol == "" {
		value := table.Aggregate(verb, tbl.Floats(param))
		explanation := fmt.Sprintf("The %s %s across all data is %s", verb, param, num2(value))
		result := table.New(
			[]string{param, "Aggregation"},
			[]table.Row{{param: value, "Aggregation": verb}},
		)
		return Matched(explanation, result), nil
	}

	var groups []table.Group
	if groupCol == lexicon.ColSeason || groupCol == lexicon.ColSite {
		groups = tbl.GroupByString(groupCol)
	} else {
		groups = tbl.GroupByInt(groupCol)
	}
	keyCol := lexicon.Title(groupCol)
	valCol := lexicon.Title(verb) + " " + param
	rows := make([]table.Row, 0, len(groups))
	for _, g := range groups {
		row := table.Row{valCol: table.Aggregate(verb, g.View.Floats(param))}
		if groupCol == lexicon.ColSeason || groupCol == lexicon.ColSite {
			row[keyCol] = g.Key
		} else {
			row[keyCol] = g.Int
		}
		rows = append(rows, row)
	}

	explanation := fmt.Sprintf("%s %s grouped by %s:", lexicon.Title(verb), param, groupCol)
	return Matched(explanation, table.New([]string{keyCol, valCol}, rows)), nil
}
