package query

import (
	"fmt"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
)

// correlationHandler answers "correlation between temperature and oxygen"
// style questions with a Pearson coefficient, a qualitative strength band
// and the 2x2 correlation matrix.
func correlationHandler() handler {
	return handler{
		name: "correlation",
		match: func(q string) bool {
			return containsAny(q, "correlation", "correlate", "relationship")
		},
		run: runCorrelation,
	}
}

func runCorrelation(q string, tbl *table.Table) (Result, error) {
	// First two distinct parameters mentioned, in lexicon order; fewer than
	// two falls back to the default temperature/oxygen pair.
	var params []string
	for _, a := range lexicon.ParameterAliases {
		if !strings.Contains(q, a.Text) {
			continue
		}
		if len(params) > 0 && params[0] == a.Column {
			continue
		}
		params = append(params, a.Column)
		if len(params) == 2 {
			break
		}
	}
	if len(params) < 2 {
		params = []string{lexicon.DefaultCorrelationPair[0], lexicon.DefaultCorrelationPair[1]}
	}

	xs, ys := tbl.PairedFloats(params[0], params[1])
	r := table.Pearson(xs, ys)

	explanation := fmt.Sprintf("Correlation between %s and %s: %.3f%s",
		params[0], params[1], r, correlationBand(r))

	cols := []string{"Parameter", params[0], params[1]}
	rows := []table.Row{
		{"Parameter": params[0], params[0]: 1.0, params[1]: r},
		{"Parameter": params[1], params[0]: r, params[1]: 1.0},
	}
	return Matched(explanation, table.New(cols, rows)), nil
}

// correlationBand classifies a coefficient into one of five qualitative
// strength bands at the fixed +-0.7 / +-0.3 thresholds.
func correlationBand(r float64) string {
	switch {
	case r > 0.7:
		return " (strong positive correlation)"
	case r > 0.3:
		return " (moderate positive correlation)"
	case r > -0.3:
		return " (weak/no correlation)"
	case r > -0.7:
		return " (moderate negative correlation)"
	default:
		return " (strong negative correlation)"
	}
}
