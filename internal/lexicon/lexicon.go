// Package lexicon holds the fixed vocabulary the query engine matches
// against: parameter aliases, month and season names, and aggregation
// keywords. All tables are ordered slices, never maps — extraction is
// first-match-wins over declaration order, so reordering an entry changes
// how questions are interpreted.
package lexicon

// Canonical column names for the measurement parameters the engine knows
// about. These must match the snapshot's column headers verbatim.
const (
	ColSampleDate   = "sample_date"
	ColSite         = "site"
	ColYear         = "year"
	ColMonth        = "month"
	ColSeason       = "season"
	ColWaterTemp    = "water_temp.C"
	ColAirTemp      = "air_temp.C"
	ColDissolvedOxy = "dissolved_oxygen.mg_per_L"
	ColEcoli        = "ecoli.CFU_per_100mL"
	ColEntero       = "entero.CFU_per_100mL"
	ColTotalColi    = "total_coliforms.CFU_per_100mL"
	ColFecalColi    = "fecal_coliform.MFT_per_100mL"
	ColPH           = "ph"
	ColTurbidity    = "turbidity.ntu"
	ColConductivity = "compensated_conductivity.uS_per_cm"
	ColChlorophyll  = "chlorophyll_a.RFU_tot"
	ColRain7        = "rain7.in"
)

// Alias maps a user-facing phrase to a canonical column name.
type Alias struct {
	Text   string
	Column string
}

// ParameterAliases lists parameter synonyms in match priority order.
// Longer phrases come before the shorter phrases they contain ("water
// temperature" before "temperature" before "temp"); a question mentioning
// several parameters resolves to whichever alias is declared first.
var ParameterAliases = []Alias{
	{"water temperature", ColWaterTemp},
	{"water temp", ColWaterTemp},
	{"temperature", ColWaterTemp},
	{"temp", ColWaterTemp},
	{"air temperature", ColAirTemp},
	{"air temp", ColAirTemp},

	{"dissolved oxygen", ColDissolvedOxy},
	{"do", ColDissolvedOxy},
	{"oxygen", ColDissolvedOxy},

	{"ecoli", ColEcoli},
	{"e coli", ColEcoli},
	{"e. coli", ColEcoli},
	{"enterococcus", ColEntero},
	{"entero", ColEntero},
	{"total coliform", ColTotalColi},
	{"coliform", ColTotalColi},
	{"fecal coliform", ColFecalColi},
	{"bacteria", ColEcoli},

	{"ph", ColPH},
	{"turbidity", ColTurbidity},
	{"conductivity", ColConductivity},
	{"chlorophyll", ColChlorophyll},
	{"rainfall", ColRain7},
	{"rain", ColRain7},
}

// Month maps a month name or abbreviation to its 1-based number.
type Month struct {
	Name   string
	Number int
}

// MonthNames lists month names in match priority order. Matching is by
// substring, not word boundary, so full names precede abbreviations.
var MonthNames = []Month{
	{"january", 1}, {"jan", 1},
	{"february", 2}, {"feb", 2},
	{"march", 3}, {"mar", 3},
	{"april", 4}, {"apr", 4},
	{"may", 5},
	{"june", 6}, {"jun", 6},
	{"july", 7}, {"jul", 7},
	{"august", 8}, {"aug", 8},
	{"september", 9}, {"sep", 9}, {"sept", 9},
	{"october", 10}, {"oct", 10},
	{"november", 11}, {"nov", 11},
	{"december", 12}, {"dec", 12},
}

// MonthLabel returns the capitalized full name for a month number, or ""
// for an out-of-range number.
func MonthLabel(num int) string {
	for _, m := range MonthNames {
		if m.Number == num {
			return Title(m.Name)
		}
	}
	return ""
}

// SeasonNames lists the season words the extractor recognizes. "autumn"
// normalizes to the canonical label "Fall".
var SeasonNames = []string{"winter", "spring", "summer", "fall", "autumn"}

// CanonicalSeason converts a matched season word to the label stored in the
// season column.
func CanonicalSeason(word string) string {
	if word == "autumn" {
		return "Fall"
	}
	return Title(word)
}

// Aggregation verbs understood by the engine.
const (
	AggMean  = "mean"
	AggMax   = "max"
	AggMin   = "min"
	AggSum   = "sum"
	AggCount = "count"
)

// Keyword maps an aggregation keyword to its verb.
type Keyword struct {
	Text string
	Verb string
}

// AggregationKeywords lists aggregation cues in match priority order.
var AggregationKeywords = []Keyword{
	{"average", AggMean},
	{"avg", AggMean},
	{"mean", AggMean},
	{"maximum", AggMax},
	{"max", AggMax},
	{"highest", AggMax},
	{"minimum", AggMin},
	{"min", AggMin},
	{"lowest", AggMin},
	{"coldest", AggMin},
	{"warmest", AggMax},
	{"hottest", AggMax},
	{"total", AggSum},
	{"sum", AggSum},
	{"count", AggCount},
}

// DefaultDisplayColumns is the column subset shown for row-listing answers
// (site and time-range queries). Columns absent from the live schema are
// skipped at query time.
var DefaultDisplayColumns = []string{
	ColSampleDate, ColSite, ColWaterTemp, ColDissolvedOxy,
	ColPH, ColTurbidity, ColEcoli,
}

// TimeDisplayColumns is the narrower subset used by time-range answers.
var TimeDisplayColumns = []string{
	ColSampleDate, ColSite, ColWaterTemp, ColDissolvedOxy, ColPH, ColEcoli,
}

// KeyParameters is the default parameter set summarized when a question
// asks for overall statistics without naming a parameter.
var KeyParameters = []string{
	ColWaterTemp, ColDissolvedOxy, ColPH, ColTurbidity, ColEcoli,
}

// DefaultCorrelationPair is used when a correlation question names fewer
// than two known parameters.
var DefaultCorrelationPair = [2]string{ColWaterTemp, ColDissolvedOxy}

// Title uppercases the first byte of an ASCII word. The vocabulary above is
// all ASCII, so this avoids pulling in a case-mapping dependency.
func Title(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// ColumnDescription returns a human description of a known column, or a
// generic fallback for columns the lexicon has no entry for. Used when
// building the column-metadata registry.
func ColumnDescription(column string) string {
	for _, d := range columnDescriptions {
		if d.Text == column {
			return d.Column
		}
	}
	return "Data column: " + column
}

// columnDescriptions reuses the Alias pair shape: Text is the column name,
// Column is the description.
var columnDescriptions = []Alias{
	{ColSampleDate, "Date when the water sample was collected"},
	{ColSite, "Site identifier/number where sample was taken"},
	{ColYear, "Year of sample collection"},
	{ColMonth, "Month of sample collection (1-12)"},
	{ColSeason, "Season (Winter, Spring, Summer, Fall)"},
	{ColAirTemp, "Air temperature in degrees Celsius"},
	{ColWaterTemp, "Water temperature in degrees Celsius"},
	{ColDissolvedOxy, "Dissolved oxygen in milligrams per liter"},
	{ColConductivity, "Temperature-compensated conductivity in microsiemens per cm"},
	{ColPH, "pH level (acidity/alkalinity, scale 0-14)"},
	{ColTurbidity, "Turbidity in Nephelometric Turbidity Units (water clarity)"},
	{ColChlorophyll, "Chlorophyll-a total RFU (algae indicator)"},
	{ColEntero, "Enterococcus colony forming units per 100mL (fecal indicator bacteria)"},
	{ColTotalColi, "Total coliform bacteria CFU per 100mL"},
	{ColEcoli, "E. coli colony forming units per 100mL (fecal contamination indicator)"},
	{ColFecalColi, "Fecal coliform by membrane filtration per 100mL"},
	{ColRain7, "Rainfall in past 7 days (inches)"},
}
