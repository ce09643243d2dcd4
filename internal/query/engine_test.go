package query

import (
	"errors"
	"testing"
	"time"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
	"github.com/ruheeh/waterchatbot/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct{ tbl *table.Table }

func (p staticProvider) CurrentTable() (*table.Table, error) { return p.tbl, nil }

type failingProvider struct{}

func (failingProvider) CurrentTable() (*table.Table, error) {
	return nil, errors.New("data file gone")
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixture builds a small but fully typed dataset with known statistics:
// January means 5.0 (1990), 2.0 (1991), 8.0 (1993) and a clean summer
// versus winter temperature split.
func fixture() *table.Table {
	cols := []string{
		lexicon.ColSampleDate, lexicon.ColSite, lexicon.ColYear,
		lexicon.ColMonth, lexicon.ColSeason,
		lexicon.ColWaterTemp, lexicon.ColDissolvedOxy,
		lexicon.ColPH, lexicon.ColTurbidity, lexicon.ColEcoli,
	}
	mk := func(date time.Time, site string, year, month int, season string,
		wt, do, ph, turb, ecoli float64) table.Row {
		return table.Row{
			lexicon.ColSampleDate:   date,
			lexicon.ColSite:         site,
			lexicon.ColYear:         year,
			lexicon.ColMonth:        month,
			lexicon.ColSeason:       season,
			lexicon.ColWaterTemp:    wt,
			lexicon.ColDissolvedOxy: do,
			lexicon.ColPH:           ph,
			lexicon.ColTurbidity:    turb,
			lexicon.ColEcoli:        ecoli,
		}
	}
	return table.New(cols, []table.Row{
		mk(day(1990, time.January, 15), "1", 1990, 1, "Winter", 4, 10, 7.0, 1.0, 50),
		mk(day(1990, time.January, 20), "2", 1990, 1, "Winter", 6, 9, 7.2, 2.0, 60),
		mk(day(1991, time.January, 10), "1", 1991, 1, "Winter", 2, 11, 7.1, 1.5, 40),
		mk(day(1993, time.January, 12), "2", 1993, 1, "Winter", 8, 8, 7.3, 2.5, 80),
		mk(day(2019, time.July, 4), "1", 2019, 7, "Summer", 24, 6, 7.8, 5.0, 400),
		mk(day(2019, time.July, 18), "2", 2019, 7, "Summer", 26, 5, 7.9, 6.0, 500),
		mk(day(2020, time.January, 5), "3", 2020, 1, "Winter", 3, 12, 7.0, 1.0, 30),
		mk(day(2020, time.July, 10), "1", 2020, 7, "Summer", 25, 5.5, 7.7, 4.0, 450),
	})
}

func testEngine() *Engine { return New(staticProvider{fixture()}) }

func TestExtremeColdestJanuaryInRange(t *testing.T) {
	resp := testEngine().Query("What was the coldest January water temperature from 1981 to 1995?")

	assert.Equal(t,
		"The lowest average water_temp.C with month = January, years 1981-1995 was in 1991 with a value of 2.00.",
		resp.Explanation)

	require.NotNil(t, resp.Table)
	require.Equal(t, 3, resp.Table.Len())
	// Ascending by yearly mean: 1991 (2.0) first, 1993 (8.0) last.
	y, _ := table.Int(resp.Table.Row(0), "Year")
	assert.Equal(t, 1991, y)
	y, _ = table.Int(resp.Table.Row(2), "Year")
	assert.Equal(t, 1993, y)
}

func TestExtremeHighestReading(t *testing.T) {
	resp := testEngine().Query("highest e. coli reading")
	// Yearly means: 1990=55, 1991=40, 1993=80, 2019=450, 2020=240.
	assert.Equal(t,
		"The highest average ecoli.CFU_per_100mL was in 2019 with a value of 450.00.",
		resp.Explanation)
}

func TestExtremeNoDataMatchingCriteria(t *testing.T) {
	resp := testEngine().Query("coldest temperature from 1901 to 1905")
	assert.Equal(t, "No data found matching your criteria.", resp.Explanation)
	assert.Nil(t, resp.Table)
}

func TestAggregationGroupedByYear(t *testing.T) {
	resp := testEngine().Query("average dissolved oxygen by year")

	assert.Equal(t, "Mean dissolved_oxygen.mg_per_L grouped by year:", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, []string{"Year", "Mean dissolved_oxygen.mg_per_L"}, resp.Table.Columns())
	require.Equal(t, 5, resp.Table.Len())

	y, _ := table.Int(resp.Table.Row(0), "Year")
	assert.Equal(t, 1990, y)
	mean, _ := table.Number(resp.Table.Row(0), "Mean dissolved_oxygen.mg_per_L")
	assert.InDelta(t, 9.5, mean, 1e-12)
}

func TestAggregationScalar(t *testing.T) {
	resp := testEngine().Query("average ph")
	assert.Equal(t, "The mean ph across all data is 7.38", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 1, resp.Table.Len())
	assert.Equal(t, "mean", table.Text(resp.Table.Row(0), "Aggregation"))
}

func TestAggregationOutranksTrend(t *testing.T) {
	// A named parameter routes to aggregation even when trend wording is
	// present; without a grouping cue the answer is the overall mean.
	resp := testEngine().Query("temperature trend over time")
	assert.Equal(t, "The mean water_temp.C across all data is 12.25", resp.Explanation)
}

func TestTrendWithoutParameter(t *testing.T) {
	// No recognizable parameter, so trend runs with its water temperature
	// default. Yearly means run 5.0 (1990) to 14.0 (2020).
	resp := testEngine().Query("trend over time")
	assert.Equal(t,
		"Trend of water_temp.C over time: increased by 9.00 (180.0%) from 1990 to 2020",
		resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, []string{"Year", "Mean", "Min", "Max", "Sample Count"}, resp.Table.Columns())
	assert.Equal(t, 5, resp.Table.Len())
}

func TestComparisonSeasons(t *testing.T) {
	resp := testEngine().Query("compare summer vs winter temperature")

	// Season words resolve in lexicon order, winter before summer.
	assert.Equal(t, "Comparison of water_temp.C between Winter and Summer:", resp.Explanation)
	require.NotNil(t, resp.Table)
	require.Equal(t, 2, resp.Table.Len())

	// Keys sort alphabetically: Summer then Winter.
	assert.Equal(t, "Summer", table.Text(resp.Table.Row(0), lexicon.ColSeason))
	mean, _ := table.Number(resp.Table.Row(0), "mean")
	assert.InDelta(t, 25.0, mean, 1e-12)
	count, _ := table.Number(resp.Table.Row(1), "count")
	assert.Equal(t, 5.0, count)
}

func TestComparisonMonthYearPeriods(t *testing.T) {
	resp := testEngine().Query("compare january 1990 vs july 2019 temperature")

	assert.Equal(t,
		"Comparison of water_temp.C between January 1990 and July 2019:",
		resp.Explanation)
	require.NotNil(t, resp.Table)
	require.Equal(t, 2, resp.Table.Len())
	assert.Equal(t, "January 1990", table.Text(resp.Table.Row(0), "Period"))
	mean, _ := table.Number(resp.Table.Row(0), "Mean")
	assert.InDelta(t, 5.0, mean, 1e-12)
	count, _ := table.Number(resp.Table.Row(1), "Count")
	assert.Equal(t, 2.0, count)
}

func TestComparisonMonthYearNoData(t *testing.T) {
	resp := testEngine().Query("compare march 1950 vs april 1951 temperature")
	assert.Equal(t, "No data found for the specified time periods.", resp.Explanation)
	assert.Nil(t, resp.Table)
}

func TestCorrelationNamedPair(t *testing.T) {
	resp := testEngine().Query("correlation between temperature and oxygen")

	assert.Contains(t, resp.Explanation,
		"Correlation between water_temp.C and dissolved_oxygen.mg_per_L:")
	assert.Contains(t, resp.Explanation, "strong negative correlation")

	require.NotNil(t, resp.Table)
	require.Equal(t, 2, resp.Table.Len())
	diag, _ := table.Number(resp.Table.Row(0), lexicon.ColWaterTemp)
	assert.Equal(t, 1.0, diag)
}

func TestCorrelationDefaultPair(t *testing.T) {
	resp := testEngine().Query("show me a correlation")
	assert.Contains(t, resp.Explanation,
		"Correlation between water_temp.C and dissolved_oxygen.mg_per_L:")
}

func TestCorrelationBands(t *testing.T) {
	assert.Equal(t, " (strong positive correlation)", correlationBand(0.75))
	assert.Equal(t, " (moderate positive correlation)", correlationBand(0.5))
	assert.Equal(t, " (weak/no correlation)", correlationBand(-0.1))
	assert.Equal(t, " (moderate negative correlation)", correlationBand(-0.5))
	assert.Equal(t, " (strong negative correlation)", correlationBand(-0.8))
}

func TestSiteQuery(t *testing.T) {
	resp := testEngine().Query("show data for site 2")

	assert.Equal(t, "Data for site 2 (3 total samples, showing last 20):", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 3, resp.Table.Len())
	assert.Equal(t, lexicon.DefaultDisplayColumns, resp.Table.Columns())
}

func TestSiteQueryUnknownSite(t *testing.T) {
	resp := testEngine().Query("show data for site 99")
	assert.Equal(t, "No data found for site 99.", resp.Explanation)
	assert.Nil(t, resp.Table)
}

func TestTimeRangeYear(t *testing.T) {
	resp := testEngine().Query("data from 2020")

	assert.Equal(t, "Data for year 2020 (2 samples, showing first 30):", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 2, resp.Table.Len())
	assert.Equal(t, lexicon.TimeDisplayColumns, resp.Table.Columns())
}

func TestTimeRangeMonthAndYear(t *testing.T) {
	resp := testEngine().Query("samples in january 2020")
	assert.Equal(t, "Data for year 2020, January (1 samples, showing first 30):", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 1, resp.Table.Len())
}

func TestCountPerSiteAfterSiteHandlerAbstains(t *testing.T) {
	// "site" routes to the site handler first; without a site number it
	// abstains and the count handler answers.
	resp := testEngine().Query("how many samples per site")

	assert.Equal(t, "Number of samples per site:", resp.Explanation)
	require.NotNil(t, resp.Table)
	require.Equal(t, 3, resp.Table.Len())
	// Sorted by sample count descending: site 1 holds 4 samples.
	assert.Equal(t, "1", table.Text(resp.Table.Row(0), lexicon.ColSite))
	n, _ := table.Number(resp.Table.Row(0), "sample_count")
	assert.Equal(t, 4.0, n)
}

func TestCountTotal(t *testing.T) {
	resp := testEngine().Query("how many samples in the dataset")
	assert.Equal(t, "Total number of samples in the dataset: 8", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 1, resp.Table.Len())
}

func TestSummaryWideForm(t *testing.T) {
	resp := testEngine().Query("describe the data")

	assert.Equal(t, "Summary statistics for key water quality parameters:", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, len(lexicon.KeyParameters), resp.Table.Len())
	assert.Equal(t,
		[]string{"Parameter", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
		resp.Table.Columns())
}

func TestSummaryWordRoutesToTimeRange(t *testing.T) {
	// "summary" contains the month abbreviation "mar", and the time-range
	// handler outranks summary, so a bare summary request reads as a March
	// filter. Matching is substring based with no word boundaries.
	resp := testEngine().Query("summary statistics")
	assert.Equal(t, "No data found for March.", resp.Explanation)
}

func TestListSites(t *testing.T) {
	resp := testEngine().Query("list all sites")

	assert.Equal(t, "All 3 sites in the dataset:", resp.Explanation)
	require.NotNil(t, resp.Table)
	assert.Equal(t, 3, resp.Table.Len())
	assert.Equal(t, "1", table.Text(resp.Table.Row(0), "Sites"))
}

func TestFallbackHelp(t *testing.T) {
	resp := testEngine().Query("hello there")

	assert.Contains(t, resp.Explanation, "I couldn't understand that query.")
	require.NotNil(t, resp.Table)
	assert.Equal(t, len(exampleQuestions), resp.Table.Len())
}

func TestQueryIsIdempotent(t *testing.T) {
	e := testEngine()
	first := e.Query("average dissolved oxygen by year")
	second := e.Query("average dissolved oxygen by year")
	assert.Equal(t, first.Explanation, second.Explanation)
	assert.Equal(t, first.Table.Len(), second.Table.Len())
}

func TestQueryProviderFailure(t *testing.T) {
	e := New(failingProvider{})
	resp := e.Query("average ph")
	assert.Equal(t, "Error processing query: data file gone", resp.Explanation)
	assert.Nil(t, resp.Table)
}
