// Package extract pulls structured entities (parameter, month, year range,
// site id, season, aggregation verb) out of normalized question text.
// All functions are stateless and operate on lowercased input; matching is
// substring containment in the lexicon's declaration order, so the first
// declared alias present anywhere in the text wins regardless of position.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ruheeh/waterchatbot/internal/lexicon"
)

var (
	yearRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`from\s+(\d{4})\s+to\s+(\d{4})`),
		regexp.MustCompile(`between\s+(\d{4})\s+and\s+(\d{4})`),
		regexp.MustCompile(`(\d{4})\s*[-\x{2013}\x{2014}]\s*(\d{4})`),
		regexp.MustCompile(`(\d{4})\s+to\s+(\d{4})`),
	}
	singleYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	sitePattern       = regexp.MustCompile(`site\s+(\d+\.?\d*)`)
)

// Parameter returns the canonical column for the first parameter alias
// contained in text, or "" if none matches.
func Parameter(text string) string {
	t := strings.ToLower(text)
	for _, a := range lexicon.ParameterAliases {
		if strings.Contains(t, a.Text) {
			return a.Column
		}
	}
	return ""
}

// Month returns the month number (1-12) for the first month name contained
// in text, or 0 if none matches. Containment is not word-bounded: an
// abbreviation embedded in another word ("domarch") will match.
func Month(text string) int {
	t := strings.ToLower(text)
	for _, m := range lexicon.MonthNames {
		if strings.Contains(t, m.Name) {
			return m.Number
		}
	}
	return 0
}

// YearRange returns the (start, end) years mentioned in text. The range
// patterns "from Y to Y", "between Y and Y", "Y-Y" (hyphen, en or em dash)
// and "Y to Y" are tried in that order; the first match wins. Failing all
// of them, a lone 4-digit year in 1900-2099 is returned as both bounds.
// (0, 0) means no year was found.
func YearRange(text string) (int, int) {
	for _, p := range yearRangePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			return start, end
		}
	}
	if m := singleYearPattern.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year, year
	}
	return 0, 0
}

// SiteID is a parsed site identifier: an integer unless the question wrote
// it with a decimal point.
type SiteID struct {
	Raw     string
	Int     int
	Float   float64
	Decimal bool
}

// Label renders the id the way the question spelled it.
func (s SiteID) Label() string { return s.Raw }

// Site extracts "site <number>" from text. ok is false when the literal
// pattern is absent.
func Site(text string) (SiteID, bool) {
	m := sitePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return SiteID{}, false
	}
	raw := m[1]
	if strings.Contains(raw, ".") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return SiteID{}, false
		}
		return SiteID{Raw: raw, Float: f, Decimal: true}, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return SiteID{}, false
	}
	return SiteID{Raw: raw, Int: n, Float: float64(n)}, true
}

// Aggregation returns the verb for the first aggregation keyword contained
// in text. It never abstains: absent any keyword the default is "mean".
func Aggregation(text string) string {
	t := strings.ToLower(text)
	for _, k := range lexicon.AggregationKeywords {
		if strings.Contains(t, k.Text) {
			return k.Verb
		}
	}
	return lexicon.AggMean
}

// Season returns the canonical season label ("Winter", "Spring", "Summer",
// "Fall") for the first season word contained in text, or "" if none.
func Season(text string) string {
	t := strings.ToLower(text)
	for _, s := range lexicon.SeasonNames {
		if strings.Contains(t, s) {
			return lexicon.CanonicalSeason(s)
		}
	}
	return ""
}

// ExtremeVerb reports whether text contains a min/max-flavored aggregation
// keyword and which direction it implies. Keywords that map to mean, sum or
// count do not qualify.
func ExtremeVerb(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, k := range lexicon.AggregationKeywords {
		if strings.Contains(t, k.Text) {
			if k.Verb == lexicon.AggMin || k.Verb == lexicon.AggMax {
				return k.Verb, true
			}
		}
	}
	return "", false
}
