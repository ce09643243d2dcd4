package query

import "github.com/ruheeh/waterchatbot/internal/table"

const helpText = `I couldn't understand that query. Here are some examples of questions I can answer:

**Extreme values:**
- "What was the coldest January water temperature from 1981 to 1995?"
- "Highest E. coli reading"
- "Warmest summer on record"

**Averages and aggregations:**
- "Average dissolved oxygen by year"
- "Mean turbidity by season"
- "Average water temperature per site"

**Site queries:**
- "Show data for site 2"
- "Data for site 4 in 2020"

**Comparisons:**
- "Compare summer vs winter temperature"
- "Compare dissolved oxygen between seasons"

**Time-based queries:**
- "Data from 2020"
- "Samples in January 2019"

**Trends and correlations:**
- "Temperature trend over time"
- "Correlation between temperature and dissolved oxygen"

**Counts and summaries:**
- "How many samples per site?"
- "Summary statistics for pH"
- "List all sites"
`

var exampleQuestions = []string{
	"coldest january water temperature 1981 to 1995",
	"average dissolved oxygen by year",
	"show data for site 2",
	"compare summer vs winter temperature",
	"how many samples per site",
	"correlation between temperature and oxygen",
}

// helpResponse is the fallback when every handler abstains: static help
// text plus a fixed table of example questions.
func helpResponse() Response {
	rows := make([]table.Row, 0, len(exampleQuestions))
	for _, q := range exampleQuestions {
		rows = append(rows, table.Row{"Example Questions": q})
	}
	return Response{
		Explanation: helpText,
		Table:       table.New([]string{"Example Questions"}, rows),
	}
}
